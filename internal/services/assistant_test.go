package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	service "github.com/aaravmahajanofficial/jewelry-storefront/internal/services"
	"github.com/aaravmahajanofficial/jewelry-storefront/pkg/completion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompletion struct {
	reply    string
	err      error
	calls    int
	messages []completion.Message
}

func (f *fakeCompletion) Complete(_ context.Context, messages []completion.Message) (string, error) {
	f.calls++
	f.messages = messages
	return f.reply, f.err
}

func TestAssistant(t *testing.T) {
	t.Run("Chat - Success", func(t *testing.T) {
		// Arrange
		client := &fakeCompletion{reply: "Our gold rings start at $25."}
		svc := service.NewAssistantService(client)

		// Act
		reply, err := svc.Chat(testContext(t), "  How much are rings?  ")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Our gold rings start at $25.", reply)
		require.Len(t, client.messages, 2)
		assert.Equal(t, completion.RoleSystem, client.messages[0].Role)
		assert.Contains(t, client.messages[0].Content, "jewelry website")
		assert.Equal(t, "How much are rings?", client.messages[1].Content)
	})

	t.Run("Search - Uses search prompt", func(t *testing.T) {
		// Arrange
		client := &fakeCompletion{reply: "1. Gold Ring"}
		svc := service.NewAssistantService(client)

		// Act
		answer, err := svc.Search(testContext(t), "gold")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "1. Gold Ring", answer)
		assert.Contains(t, client.messages[0].Content, "search assistant")
	})

	t.Run("Failure - Blank message never calls upstream", func(t *testing.T) {
		// Arrange
		client := &fakeCompletion{}
		svc := service.NewAssistantService(client)

		// Act
		_, errChat := svc.Chat(testContext(t), "   ")
		_, errSearch := svc.Search(testContext(t), strings.Repeat("a", 2001))

		// Assert
		requireAppError(t, errChat, appErrors.ErrCodeValidation, http.StatusBadRequest, "Valid message is required")
		requireAppError(t, errSearch, appErrors.ErrCodeValidation, http.StatusBadRequest, "Valid search query is required")
		assert.Zero(t, client.calls)
	})

	t.Run("Failure - Upstream error is not retried", func(t *testing.T) {
		// Arrange
		upstream := errors.New("502 bad gateway")
		client := &fakeCompletion{err: upstream}
		svc := service.NewAssistantService(client)

		// Act
		_, err := svc.Chat(testContext(t), "hello")

		// Assert
		requireAppError(t, err, appErrors.ErrCodeThirdPartyError, http.StatusInternalServerError, "Something went wrong with AI. Check logs.")
		assert.ErrorIs(t, err, upstream)
		assert.Equal(t, 1, client.calls)
	})
}
