package mailer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// Message is one outgoing mail. Text and HTML carry the same content;
// clients pick whichever part they can render.
type Message struct {
	FromEmail string
	FromName  string
	To        string
	ReplyTo   string
	Subject   string
	Text      string
	HTML      string
}

// Transport abstracts the outbound mail service so dispatch logic can be
// tested against a fake without a network call.
type Transport interface {
	// Verify performs a lightweight handshake (connect + authenticate)
	// against the transport without sending anything.
	Verify(ctx context.Context) error
	// Send delivers the message and returns an opaque delivery identifier.
	Send(ctx context.Context, msg *Message) (string, error)
}

// SMTPTransport sends mail through an authenticated SMTP relay.
// Each Verify/Send opens its own session, so concurrent calls are
// independent.
type SMTPTransport struct {
	dialer *gomail.Dialer
}

// NewSMTPTransport creates a transport for the given SMTP relay
func NewSMTPTransport(host string, port int, username, password string) *SMTPTransport {
	return &SMTPTransport{
		dialer: gomail.NewDialer(host, port, username, password),
	}
}

// Verify dials the relay and closes the session immediately. A successful
// dial covers connectivity, STARTTLS negotiation and authentication.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sc, err := t.dialer.Dial()
	if err != nil {
		return err
	}
	return sc.Close()
}

// Send delivers msg in a fresh SMTP session. The returned identifier is
// the Message-ID header stamped on the outgoing mail; the relay does not
// report its own id back over SMTP.
func (t *SMTPTransport) Send(ctx context.Context, msg *Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.FromEmail, msg.FromName)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)

	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), t.dialer.Host)
	m.SetHeader("Message-ID", id)

	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	if err := t.dialer.DialAndSend(m); err != nil {
		return "", err
	}
	return id, nil
}

// Host returns the configured relay host, for logging
func (t *SMTPTransport) Host() string {
	return t.dialer.Host
}
