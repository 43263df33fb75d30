package calculator

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/congo-pay/corebank/internal/money"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCompoundInterest(t *testing.T) {
	cases := []struct {
		name      string
		principal string
		rate      string
		years     int
		frequency int
		want      string
	}{
		{"annual", "1000.00", "0.05", 10, 1, "1628.89"},
		{"monthly", "5000.00", "0.06", 5, 12, "6744.25"},
		{"daily", "2000.00", "0.04", 3, 365, "2254.98"},
		{"high precision inputs", "1000.000000", "0.050000", 1, 365, "1051.27"},
		{"zero rate", "1000.00", "0.00", 5, 1, "1000.00"},
		{"zero principal", "0.00", "0.05", 5, 1, "0.00"},
		{"zero years", "1000.00", "0.05", 0, 1, "1000.00"},
		{"quarterly", "1000", "0.05", 1, 4, "1050.95"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CompoundInterest(d(tc.principal), d(tc.rate), tc.years, tc.frequency)
			require.NoError(t, err)
			assert.Equal(t, tc.want, money.Format(got))
			assert.Equal(t, int32(-2), got.Exponent())
		})
	}
}

func TestCompoundInterestInvalid(t *testing.T) {
	p, r := d("1000.00"), d("0.05")

	_, err := CompoundInterest(p, r, -1, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = CompoundInterest(p, r, 5, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = CompoundInterest(p, r, 5, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCompoundInterestRejectsPeriodOverflow(t *testing.T) {
	p, r := d("1000.00"), d("0.05")

	_, err := CompoundInterest(p, r, math.MaxInt/12+1, 12)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = CompoundInterest(p, r, math.MaxInt, 2)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLoanPayment(t *testing.T) {
	cases := []struct {
		name      string
		principal string
		rate      string
		months    int
		want      string
	}{
		{"zero rate", "12000.00", "0", 12, "1000.00"},
		{"zero rate rounds half up", "100.00", "0", 3, "33.33"},
		{"zero rate rounds up", "0.05", "0", 2, "0.03"},
		{"mortgage", "300000.00", "0.004167", 360, "1610.54"},
		{"short term high rate", "5000.00", "0.02", 12, "472.80"},
		{"one percent", "1000.00", "0.01", 12, "88.85"},
		{"half percent", "5000.00", "0.005", 24, "221.60"},
		{"three quarter percent", "10000.00", "0.0075", 36, "318.00"},
		{"zero principal", "0", "0.01", 12, "0.00"},
		{"negative principal", "-1000.00", "0.01", 12, "0.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LoanPayment(d(tc.principal), d(tc.rate), tc.months)
			require.NoError(t, err)
			assert.Equal(t, tc.want, money.Format(got))
		})
	}
}

func TestLoanPaymentInvalid(t *testing.T) {
	_, err := LoanPayment(d("1000.00"), d("0.01"), 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = LoanPayment(d("1000.00"), d("0.01"), -12)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// (1-2)^2 - 1 == 0
	_, err = LoanPayment(d("1000.00"), d("-2"), 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func naivePrime(n int64) bool {
	if n < 2 {
		return false
	}
	for i := int64(2); i < n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func TestIsPrimeMatchesTrialDivision(t *testing.T) {
	for n := int64(-10); n <= 1000; n++ {
		assert.Equal(t, naivePrime(n), IsPrime(n), "n=%d", n)
	}
}

func TestIsPrimeKnownValues(t *testing.T) {
	for _, n := range []int64{2, 3, 97, 101, 103, 107, 109, 113, 997, 1009} {
		assert.True(t, IsPrime(n), "%d should be prime", n)
	}
	for _, n := range []int64{91, 93, 95, 99, 121, 999, 1001} {
		assert.False(t, IsPrime(n), "%d should be composite", n)
	}
}

func TestIsPrimeNearInt64Boundary(t *testing.T) {
	// 2^63-1 = 7^2 * 73 * 127 * 337 * 92737 * 649657
	assert.False(t, IsPrime(math.MaxInt64))
	// Largest prime below 2^32.
	assert.True(t, IsPrime(4294967291))
	assert.False(t, IsPrime(4294967291*7))
}

func TestIsPrimeInt32Boundary(t *testing.T) {
	// Mersenne prime 2^31-1; i*i overflows int32 during the scan.
	assert.True(t, IsPrime(math.MaxInt32))
}
