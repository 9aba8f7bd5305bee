package service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/metrics"
	"github.com/aaravmahajanofficial/jewelry-storefront/pkg/completion"
)

const (
	chatPrompt   = "You are a helpful assistant for a jewelry website. Keep answers short and friendly."
	searchPrompt = "You are a search assistant for a jewelry website. Provide a concise list of matching products or relevant information."

	maxMessageRunes = 2000
)

type AssistantService interface {
	Chat(ctx context.Context, message string) (string, error)
	Search(ctx context.Context, query string) (string, error)
}

type assistantService struct {
	client completion.Client
}

func NewAssistantService(client completion.Client) AssistantService {
	return &assistantService{client: client}
}

func (s *assistantService) Chat(ctx context.Context, message string) (string, error) {
	return s.complete(ctx, "chat", chatPrompt, message, "Valid message is required", "Something went wrong with AI. Check logs.")
}

func (s *assistantService) Search(ctx context.Context, query string) (string, error) {
	return s.complete(ctx, "ask", searchPrompt, query, "Valid search query is required", "Something went wrong with search.")
}

// no retries and no caching; each call goes upstream exactly once
func (s *assistantService) complete(ctx context.Context, endpoint, prompt, input, invalidMsg, upstreamMsg string) (string, error) {

	input = strings.TrimSpace(input)
	if input == "" || utf8.RuneCountInString(input) > maxMessageRunes {
		return "", appErrors.ValidationError(invalidMsg)
	}

	reply, err := s.client.Complete(ctx, []completion.Message{
		{Role: completion.RoleSystem, Content: prompt},
		{Role: completion.RoleUser, Content: input},
	})
	metrics.RecordAssistantCall(endpoint, err)
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Completion request failed", slog.String("error", err.Error()))
		return "", appErrors.ThirdPartyError(upstreamMsg).WithError(err)
	}

	return reply, nil
}
