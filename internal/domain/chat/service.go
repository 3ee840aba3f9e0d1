// Package chat answers free-form health questions through an LLM backend,
// constrained to the education assistant role.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/healthedu/healthedu/internal/platform/ai"
)

const (
	maxTokens   = 500
	temperature = 0.7
)

// Completer is the LLM backend contract, satisfied by ai.Client.
type Completer interface {
	Complete(ctx context.Context, req ai.Request) (string, error)
}

type Service struct {
	completer Completer
}

func NewService(completer Completer) *Service {
	return &Service{completer: completer}
}

// systemPrompt frames the assistant for its audience. The language clause
// steers the model; it does not guarantee the output language.
func systemPrompt(language string) string {
	target := "the requested local language"
	if language == "en" {
		target = "English"
	}
	return strings.Join([]string{
		"You are a healthcare education assistant for rural and semi-urban populations.",
		"Provide accurate, simple, and culturally sensitive health information.",
		"Focus on preventive care, disease symptoms, vaccination schedules, and when to seek medical help.",
		"Always recommend consulting healthcare professionals for serious concerns.",
		fmt.Sprintf("Respond in %s.", target),
		"Keep responses clear and accessible for people with limited medical knowledge.",
	}, "\n")
}

// Ask sends the user's question to the backend with the healthcare framing.
func (s *Service) Ask(ctx context.Context, message, language string) (string, error) {
	if language == "" {
		language = "en"
	}
	reply, err := s.completer.Complete(ctx, ai.Request{
		Messages: []ai.Message{
			{Role: "system", Content: systemPrompt(language)},
			{Role: "user", Content: message},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if reply == "" {
		return "I apologize, but I cannot provide a response at this time. Please try again.", nil
	}
	return reply, nil
}
