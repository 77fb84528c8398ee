package domain

import "context"

// ChatRequest carries one user message for the portfolio chat widget.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatUsecase defines the interface for the generative chat proxy
type ChatUsecase interface {
	// Reply forwards the user's message to the generative-language API
	// and returns the response text.
	Reply(ctx context.Context, message string) (string, error)
}
