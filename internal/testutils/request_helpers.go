package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
)

// CreateTestRequestWithContext builds a request as it looks after the identity middleware ran.
func CreateTestRequestWithContext(method, target string, body io.Reader, identity middleware.Identity, pathParams map[string]string) *http.Request {
	req := CreateTestRequestWithoutContext(method, target, body, pathParams)

	ctx := middleware.WithIdentity(req.Context(), identity)

	return req.WithContext(ctx)
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := middleware.WithLogger(req.Context(), logger)

	return req.WithContext(ctx)
}

func TokenIdentity(userID int64) middleware.Identity {
	return middleware.Identity{UserID: userID, Source: middleware.SourceToken}
}

func DefaultIdentity(userID int64) middleware.Identity {
	return middleware.Identity{UserID: userID, Source: middleware.SourceDefault}
}
