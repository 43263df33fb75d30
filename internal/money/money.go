// Package money holds the fixed-point conventions shared by the ledger and the
// calculators: two fractional digits for amounts, ten for intermediate rates,
// and half-up rounding everywhere.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// Scale is the number of fractional digits carried by every monetary amount.
	Scale int32 = 2
	// RateScale is the precision of intermediate per-period rates.
	RateScale int32 = 10
)

// Zero is 0.00.
var Zero = decimal.Zero.Round(Scale)

// Round rounds d half-up (away from zero on a tie) to two decimals.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// HasScale reports whether d is exactly representable with two decimals.
func HasScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(Scale))
}

// Parse reads a decimal amount from text and rounds it to two decimals.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return Round(d), nil
}

// ParseRate reads a rate without rounding it.
func ParseRate(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse rate %q: %w", s, err)
	}
	return d, nil
}

// Format renders d with exactly two decimals.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
