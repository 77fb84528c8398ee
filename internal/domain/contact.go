package domain

import "context"

// ContactRequest represents a contact form submission crossing the
// client/server boundary. Validation happens server-side regardless of
// what the frontend already checked.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ErrorCategory tags a failed dispatch so operators can tell a down
// relay apart from bad credentials, and callers can pick a message.
type ErrorCategory string

const (
	// CategoryInvalidInput marks a required field missing at the handler
	// boundary. Never transient: the caller bypassed client validation.
	CategoryInvalidInput ErrorCategory = "invalid-input"
	// CategoryTransportUnavailable marks a failed SMTP handshake before
	// any delivery was attempted.
	CategoryTransportUnavailable ErrorCategory = "transport-unavailable"
	// CategoryAuthFailure marks rejected credentials during send.
	CategoryAuthFailure ErrorCategory = "auth-failure"
	// CategoryConnectionFailure marks a network-level failure during send.
	CategoryConnectionFailure ErrorCategory = "connection-failure"
	// CategoryUnknown covers any other transport error.
	CategoryUnknown ErrorCategory = "unknown"
)

// DispatchResult is the structured outcome of one dispatch attempt.
// Exactly one of MessageID (success) or Category+Detail (failure) is
// meaningful.
type DispatchResult struct {
	Success   bool          `json:"success"`
	MessageID string        `json:"message_id,omitempty"`
	Category  ErrorCategory `json:"category,omitempty"`
	Error     string        `json:"error,omitempty"`
	Detail    string        `json:"detail,omitempty"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Dispatch re-validates the submission, verifies the mail transport
	// and sends the message. It never returns an error: every failure
	// path is folded into the result with a category and a message safe
	// to show the submitter.
	Dispatch(ctx context.Context, req *ContactRequest) *DispatchResult
}
