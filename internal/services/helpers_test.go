package service_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return db, mock
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	return middleware.WithLogger(t.Context(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func requireAppError(t *testing.T, err error, code string, status int, message string) {
	t.Helper()

	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, status, appErr.StatusCode)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}

type decimalArg struct {
	want decimal.Decimal
}

func decimalEq(value string) decimalArg {
	return decimalArg{want: decimal.RequireFromString(value)}
}

func (d decimalArg) Match(v driver.Value) bool {
	var raw string

	switch value := v.(type) {
	case string:
		raw = value
	case []byte:
		raw = string(value)
	default:
		return false
	}

	got, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}

	return got.Equal(d.want)
}

func strPtr(s string) *string { return &s }
