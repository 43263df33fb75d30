package account

import "errors"

// ErrInvalidArgument marks structural validation failures at construction
// time. No Account is produced alongside it.
var ErrInvalidArgument = errors.New("invalid argument")

// Business-rule failures. A mutator returning one of these has left balance,
// ledger and withdrawal counters exactly as they were.
var (
	// ErrAccountInactive is returned by every mutator once the account is closed.
	ErrAccountInactive = errors.New("account inactive")

	// ErrInvalidAmount rejects zero, negative, or sub-cent amounts.
	ErrInvalidAmount = errors.New("amount must be positive with at most two decimals")

	// ErrInsufficientFunds rejects withdrawals larger than the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDailyLimitExceeded rejects a withdrawal that would push the day's
	// total above the account type's limit.
	ErrDailyLimitExceeded = errors.New("daily withdrawal limit exceeded")

	// ErrTargetUnavailable rejects transfers to a missing or closed account.
	ErrTargetUnavailable = errors.New("transfer target unavailable")

	// ErrBalanceNotZero rejects closing an account that still holds funds.
	ErrBalanceNotZero = errors.New("balance must be zero to close")
)
