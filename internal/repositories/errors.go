package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
	"github.com/lib/pq"
)

const (
	uniqueViolation   = "23505"
	maxLoggedQueryLen = 100
)

// Redacted stands in for secret query parameters in error logs.
const Redacted = "[REDACTED]"

func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// logQueryError logs a failed statement with its truncated text, parameters
// and driver code, then returns err wrapped. sql.ErrNoRows passes through untouched.
func logQueryError(ctx context.Context, query string, err error, args ...any) error {

	if errors.Is(err, sql.ErrNoRows) {
		return err
	}

	attrs := []any{
		slog.String("query", utils.Truncate(strings.Join(strings.Fields(query), " "), maxLoggedQueryLen)),
		slog.Any("params", args),
		slog.String("error", err.Error()),
	}

	level := slog.LevelError

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		attrs = append(attrs, slog.String("pg_code", string(pqErr.Code)))
		if pqErr.Code == uniqueViolation {
			level = slog.LevelWarn
		}
	}

	middleware.LoggerFromContext(ctx).Log(ctx, level, "Database query failed", attrs...)

	return fmt.Errorf("querying database: %w", err)
}

func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
