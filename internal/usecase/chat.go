package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/genai"
)

type chatUsecase struct {
	client  *genai.Client
	persona string
}

// NewChatUsecase creates a new chat usecase. The optional persona is
// prepended to every prompt so the widget answers in the site owner's voice.
func NewChatUsecase(client *genai.Client, persona string) domain.ChatUsecase {
	return &chatUsecase{
		client:  client,
		persona: persona,
	}
}

func (uc *chatUsecase) Reply(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("message is required")
	}

	if !uc.client.IsConfigured() {
		return "", fmt.Errorf("chat service is not configured")
	}

	prompt := message
	if uc.persona != "" {
		prompt = uc.persona + "\n\n" + message
	}

	reply, err := uc.client.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}
	return reply, nil
}
