package repository_test

import (
	"database/sql"
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
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

// decimalArg matches a driver value holding the same numeric amount.
type decimalArg struct {
	want decimal.Decimal
}

func decimalEq(value string) decimalArg {
	return decimalArg{want: decimal.RequireFromString(value)}
}

func (d decimalArg) Match(v driver.Value) bool {
	var got decimal.Decimal

	switch value := v.(type) {
	case string:
		parsed, err := decimal.NewFromString(value)
		if err != nil {
			return false
		}
		got = parsed
	case []byte:
		parsed, err := decimal.NewFromString(string(value))
		if err != nil {
			return false
		}
		got = parsed
	case float64:
		got = decimal.NewFromFloat(value)
	default:
		return false
	}

	return got.Equal(d.want)
}

func strPtr(s string) *string { return &s }
