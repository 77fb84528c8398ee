package usecase

import (
	"context"
	"strings"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/mailer"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	transport mailer.Transport
	fromEmail string
	fromName  string
	to        string
	validate  *validator.Validate
}

// NewContactUsecase creates a new contact usecase. The sender and recipient
// addresses are fixed at construction; only the Reply-To varies per message.
func NewContactUsecase(transport mailer.Transport, cfg *config.Config, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		transport: transport,
		fromEmail: cfg.SMTPFromEmail,
		fromName:  "Portfolio Contact",
		to:        cfg.ContactTo,
		validate:  validate,
	}
}

// Dispatch runs the full pipeline: presence check, transport handshake,
// message construction, delivery. Each call is one attempt; retrying is
// the submitter's decision.
func (uc *contactUsecase) Dispatch(ctx context.Context, req *domain.ContactRequest) *domain.DispatchResult {
	// The client is never trusted: re-validate even though the form
	// already did. Whitespace-only counts as missing.
	trimmed := &domain.ContactRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}
	if err := uc.validate.Struct(trimmed); err != nil {
		logger.Log.Warn("Contact dispatch rejected", "category", domain.CategoryInvalidInput, "error", err)
		return &domain.DispatchResult{
			Success:  false,
			Category: domain.CategoryInvalidInput,
			Error:    "Missing required fields",
			Detail:   "Name, email, and message are required",
		}
	}

	// Handshake before composing anything. A failure here is a
	// configuration problem, not a delivery error.
	if err := uc.transport.Verify(ctx); err != nil {
		logger.Log.Error("SMTP verification failed", "error", err)
		return &domain.DispatchResult{
			Success:  false,
			Category: domain.CategoryTransportUnavailable,
			Error:    "Email service configuration error",
			Detail:   "Unable to connect to email service",
		}
	}

	msg, err := mailer.BuildContactMessage(uc.fromEmail, uc.fromName, uc.to, mailer.ContactEmailData{
		SenderName:  trimmed.Name,
		SenderEmail: trimmed.Email,
		Message:     trimmed.Message,
	})
	if err != nil {
		logger.Log.Error("Failed to build contact email", "error", err)
		return &domain.DispatchResult{
			Success:  false,
			Category: domain.CategoryUnknown,
			Error:    "Failed to send email",
			Detail:   "Failed to send message. Please try again.",
		}
	}

	id, err := uc.transport.Send(ctx, msg)
	if err != nil {
		logger.Log.Error("Email sending error", "error", err)
		return failureResult(err)
	}

	logger.Log.Info("Email sent successfully", "messageID", id)
	return &domain.DispatchResult{Success: true, MessageID: id}
}

// failureResult maps a transport error onto the category taxonomy with a
// message safe to show the submitter.
func failureResult(err error) *domain.DispatchResult {
	category := classifyTransportError(err)

	res := &domain.DispatchResult{Success: false, Category: category}
	switch category {
	case domain.CategoryAuthFailure:
		res.Error = "Email authentication failed"
		res.Detail = "Please check your email credentials and app password"
	case domain.CategoryConnectionFailure:
		res.Error = "Connection to email service failed"
		res.Detail = "Please check your internet connection and email service settings"
	default:
		res.Error = "Failed to send email"
		// Flat error string only, never internals like stack traces
		res.Detail = err.Error()
	}
	return res
}
