package account

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Type is the closed set of account products.
type Type int

const (
	// Checking earns 0.5% and may withdraw 1000.00 per day.
	Checking Type = iota + 1
	// Savings earns 2% and may withdraw 1000.00 per day.
	Savings
	// Premium earns 3.5% and may withdraw 5000.00 per day.
	Premium
)

var (
	checkingRate = decimal.RequireFromString("0.005")
	savingsRate  = decimal.RequireFromString("0.02")
	premiumRate  = decimal.RequireFromString("0.035")

	standardLimit = decimal.RequireFromString("1000.00")
	premiumLimit  = decimal.RequireFromString("5000.00")
)

// Valid reports whether t is one of the declared account types.
func (t Type) Valid() bool {
	switch t {
	case Checking, Savings, Premium:
		return true
	default:
		return false
	}
}

// InterestRate returns the rate applied by interest accrual.
func (t Type) InterestRate() decimal.Decimal {
	switch t {
	case Savings:
		return savingsRate
	case Premium:
		return premiumRate
	case Checking:
		return checkingRate
	default:
		return checkingRate
	}
}

// DailyWithdrawalLimit returns the per-day withdrawal ceiling.
func (t Type) DailyWithdrawalLimit() decimal.Decimal {
	switch t {
	case Premium:
		return premiumLimit
	case Checking, Savings:
		return standardLimit
	default:
		return standardLimit
	}
}

func (t Type) String() string {
	switch t {
	case Checking:
		return "checking"
	case Savings:
		return "savings"
	case Premium:
		return "premium"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType maps a case-insensitive name to a Type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "checking":
		return Checking, nil
	case "savings":
		return Savings, nil
	case "premium":
		return Premium, nil
	default:
		return 0, fmt.Errorf("%w: unknown account type %q", ErrInvalidArgument, s)
	}
}

// TransactionKind is the closed set of ledger event kinds.
type TransactionKind int

const (
	Deposit TransactionKind = iota + 1
	Withdrawal
	Interest
	Closure
)

func (k TransactionKind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case Interest:
		return "interest"
	case Closure:
		return "account_closure"
	default:
		return fmt.Sprintf("TransactionKind(%d)", int(k))
	}
}
