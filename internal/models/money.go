package models

import "github.com/shopspring/decimal"

// Money is a decimal amount that always serialises with two places ("25.00", not "25").
// Scanning, driver values and arithmetic come from the embedded decimal.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// RequireMoney parses value and panics on malformed input; for constants and tests.
func RequireMoney(value string) Money {
	return Money{Decimal: decimal.RequireFromString(value)}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}
