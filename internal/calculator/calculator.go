// Package calculator provides stateless financial projections and a
// primality test. All monetary arithmetic is exact base-10; results are
// rounded half-up to two decimals.
package calculator

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/congo-pay/corebank/internal/money"
)

// ErrInvalidArgument is returned for out-of-range inputs. No result is
// produced alongside it.
var ErrInvalidArgument = errors.New("invalid argument")

// CompoundInterest projects principal compounded compoundFrequency times a
// year for years years at annualRate. The per-period rate is rounded half-up
// to ten decimals and applied once per period, so the cost is linear in
// years*compoundFrequency.
func CompoundInterest(principal, annualRate decimal.Decimal, years, compoundFrequency int) (decimal.Decimal, error) {
	if years < 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: years must not be negative, got %d", ErrInvalidArgument, years)
	}
	if compoundFrequency <= 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: compound frequency must be positive, got %d", ErrInvalidArgument, compoundFrequency)
	}
	if years > math.MaxInt/compoundFrequency {
		return decimal.Decimal{}, fmt.Errorf("%w: %d years at %d periods a year is too many periods", ErrInvalidArgument, years, compoundFrequency)
	}
	if principal.IsZero() {
		return money.Zero, nil
	}

	periodRate := annualRate.DivRound(decimal.NewFromInt(int64(compoundFrequency)), money.RateScale)
	factor := decimal.NewFromInt(1).Add(periodRate)
	periods := years * compoundFrequency

	result := principal
	for i := 0; i < periods; i++ {
		result = result.Mul(factor)
	}
	return money.Round(result), nil
}

// LoanPayment returns the fixed monthly payment that retires principal over
// months at monthlyRate. A non-positive principal needs no payment.
func LoanPayment(principal, monthlyRate decimal.Decimal, months int) (decimal.Decimal, error) {
	if months <= 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: months must be positive, got %d", ErrInvalidArgument, months)
	}
	if !principal.IsPositive() {
		return money.Zero, nil
	}
	if monthlyRate.IsZero() {
		return principal.DivRound(decimal.NewFromInt(int64(months)), money.Scale), nil
	}

	// M = P * r(1+r)^n / ((1+r)^n - 1)
	one := decimal.NewFromInt(1)
	factor := one.Add(monthlyRate)
	numerator := monthlyRate
	growth := one
	for i := 0; i < months; i++ {
		numerator = numerator.Mul(factor)
		growth = growth.Mul(factor)
	}
	denominator := growth.Sub(one)
	if denominator.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w: monthly rate %s yields no growth", ErrInvalidArgument, monthlyRate)
	}
	return principal.Mul(numerator).DivRound(denominator, money.Scale), nil
}

// IsPrime reports whether n is prime using trial division by 6k±1.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	// i <= n/i avoids overflowing i*i near the int64 boundary.
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
