// Package form implements the contact form controller: draft state,
// synchronous validation and the visible submission state machine. It
// never sends mail itself; delivery goes through a Dispatcher.
package form

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

// Field names a contact form field.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Draft is the mutable form state; it is frozen into a Submission at
// submit time.
type Draft struct {
	Name    string
	Email   string
	Message string
}

// Submission is the immutable payload sent across the boundary.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Errors maps a field to its validation message. An empty map means the
// draft is acceptable to submit.
type Errors map[Field]string

// Status is the submission lifecycle state. Exactly one is active at a
// time; modeling it as a variant keeps "submitting and succeeded at once"
// unrepresentable.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Result is what a Dispatcher reports back for one submission.
type Result struct {
	Success   bool
	MessageID string
	Category  string
	Summary   string
	Details   string
}

// Dispatcher delivers a frozen submission to the mail dispatch handler.
// A returned error means the call itself failed (server unreachable,
// malformed response); a handler-reported failure comes back as a Result
// with Success=false.
type Dispatcher interface {
	Dispatch(ctx context.Context, sub Submission) (*Result, error)
}

// ErrMalformedResponse marks a response that could not be parsed as the
// expected shape at all, as opposed to a structured failure. Dispatchers
// wrap it so the controller can show the configuration-error message.
var ErrMalformedResponse = errors.New("malformed dispatch response")

// ErrSubmissionInFlight is returned by Submit while a previous submission
// has not settled yet.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// Permissive syntactic shape only, mirroring the site's original check.
// Deliverability is not our problem to verify.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks a draft and returns the full error set; all fields are
// checked even when an earlier one already failed. It is a pure function:
// same draft, same errors.
func Validate(d Draft) Errors {
	errs := Errors{}

	name := strings.TrimSpace(d.Name)
	switch {
	case name == "":
		errs[FieldName] = "Name is required"
	case utf8.RuneCountInString(name) < 2:
		errs[FieldName] = "Name must be at least 2 characters"
	}

	email := strings.TrimSpace(d.Email)
	switch {
	case email == "":
		errs[FieldEmail] = "Email is required"
	case !emailPattern.MatchString(email):
		errs[FieldEmail] = "Please enter a valid email address"
	}

	message := strings.TrimSpace(d.Message)
	switch {
	case message == "":
		errs[FieldMessage] = "Message is required"
	case utf8.RuneCountInString(message) < 10:
		errs[FieldMessage] = "Message must be at least 10 characters"
	}

	return errs
}

// Controller owns one contact form instance. Safe for concurrent use;
// the submitting state doubles as the single-in-flight gate.
type Controller struct {
	mu            sync.Mutex
	dispatcher    Dispatcher
	draft         Draft
	errors        Errors
	status        Status
	statusMessage string
}

// NewController creates an idle controller wired to the given dispatcher.
func NewController(d Dispatcher) *Controller {
	return &Controller{
		dispatcher: d,
		errors:     Errors{},
	}
}

// UpdateField overwrites one draft field. If the field had a validation
// error it is cleared, without re-running full validation, so the message
// disappears as soon as the user starts typing.
func (c *Controller) UpdateField(f Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch f {
	case FieldName:
		c.draft.Name = value
	case FieldEmail:
		c.draft.Email = value
	case FieldMessage:
		c.draft.Message = value
	default:
		return
	}
	delete(c.errors, f)
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Errors returns a copy of the current validation error set.
func (c *Controller) Errors() Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(Errors, len(c.errors))
	for f, msg := range c.errors {
		out[f] = msg
	}
	return out
}

// Status returns the current lifecycle state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// StatusMessage returns the banner message for the current state.
func (c *Controller) StatusMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusMessage
}

// Submit validates the draft and, if it passes, dispatches it once.
// A validation failure records the error set and performs no network
// call; the lifecycle state is untouched. A successful dispatch resets
// the draft. There is no automatic retry: one call, one attempt.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.status == StatusSubmitting {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}

	if errs := Validate(c.draft); len(errs) > 0 {
		c.errors = errs
		c.mu.Unlock()
		return nil
	}

	c.status = StatusSubmitting
	c.statusMessage = ""
	sub := Submission{
		Name:    c.draft.Name,
		Email:   c.draft.Email,
		Message: c.draft.Message,
	}
	c.mu.Unlock()

	// Dispatch outside the lock so state stays readable while the
	// request is in flight; the submitting status gates re-entry.
	res, err := c.dispatcher.Dispatch(ctx, sub)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.status = StatusFailed
		if errors.Is(err, ErrMalformedResponse) {
			c.statusMessage = "Server configuration error. Please try again later or contact support."
		} else {
			c.statusMessage = "Something went wrong. Please try again later."
		}
		return err
	}

	if res.Success {
		c.status = StatusSucceeded
		c.statusMessage = "Thank you! Your message has been sent successfully."
		c.draft = Draft{}
		c.errors = Errors{}
		return nil
	}

	c.status = StatusFailed
	// Prefer the handler's user-facing detail, then its summary
	switch {
	case res.Details != "":
		c.statusMessage = res.Details
	case res.Summary != "":
		c.statusMessage = res.Summary
	default:
		c.statusMessage = "Failed to send message. Please try again."
	}
	return nil
}
