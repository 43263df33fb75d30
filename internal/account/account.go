// Package account implements a single bank account: its balance, status,
// daily withdrawal allowance and append-only ledger of transactions.
//
// Every exported method is safe for concurrent use. Mutators hold the
// account's lock for their full duration; Transfer holds both accounts' locks,
// acquired in a fixed order, so concurrent opposing transfers cannot deadlock.
package account

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/congo-pay/corebank/internal/clock"
	"github.com/congo-pay/corebank/internal/money"
)

const (
	descInterest = "Monthly interest"
	descClosure  = "Account closed"
)

// seq breaks lock-order ties between distinct accounts sharing an id.
var seq atomic.Uint64

// Account is a single-currency account with two-decimal balance.
type Account struct {
	mu    sync.Mutex
	seq   uint64
	id    string
	typ   Type
	clock clock.Clock

	balance        decimal.Decimal
	active         bool
	ledger         []Transaction
	dailyLimit     decimal.Decimal
	withdrawnToday decimal.Decimal
	withdrawnOn    time.Time
	lastActivityAt time.Time
}

// Option customizes a new Account.
type Option func(*Account)

// WithClock sets the time source for timestamps and day rollover.
func WithClock(c clock.Clock) Option {
	return func(a *Account) {
		if c != nil {
			a.clock = c
		}
	}
}

// New validates its arguments and opens an active account. The initial
// balance is rounded half-up to two decimals.
func New(id string, typ Type, initial decimal.Decimal, opts ...Option) (*Account, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: account id must not be empty", ErrInvalidArgument)
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: account type is required", ErrInvalidArgument)
	}
	if initial.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", ErrInvalidArgument)
	}

	a := &Account{
		seq:            seq.Add(1),
		id:             id,
		typ:            typ,
		clock:          clock.NewSystem(time.UTC),
		balance:        money.Round(initial),
		active:         true,
		dailyLimit:     typ.DailyWithdrawalLimit(),
		withdrawnToday: money.Zero,
	}
	for _, opt := range opts {
		opt(a)
	}
	now := a.clock.Now()
	a.withdrawnOn = now
	a.lastActivityAt = now
	return a, nil
}

// Deposit credits amount to the balance.
func (a *Account) Deposit(amount decimal.Decimal, description string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.depositLocked(amount, description)
}

// Withdraw debits amount, subject to the balance and the daily limit. The
// daily counter restarts when the calendar day has changed since it was last
// accumulated; only withdrawals evaluate that rollover.
func (a *Account) Withdraw(amount decimal.Decimal, description string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.withdrawLocked(amount, description)
}

// Transfer moves amount from a to target. Either both balances change or
// neither does. Each side gains exactly one ledger entry on success. The ledger
// text is fixed to "Transfer to <id>" and "Transfer from <id>"; description is
// accepted for the caller's records and never written to either ledger.
func (a *Account) Transfer(target *Account, amount decimal.Decimal, description string) error {
	if target == nil {
		return ErrTargetUnavailable
	}

	if target == a {
		a.mu.Lock()
		defer a.mu.Unlock()
	} else {
		first, second := lockOrder(a, target)
		first.mu.Lock()
		defer first.mu.Unlock()
		second.mu.Lock()
		defer second.mu.Unlock()
	}

	if !target.active {
		return ErrTargetUnavailable
	}
	if err := a.withdrawLocked(amount, "Transfer to "+target.id); err != nil {
		return err
	}
	if err := target.depositLocked(amount, "Transfer from "+a.id); err != nil {
		// Unreachable while the target is checked under its lock, kept so a
		// failed credit can never strand the debited funds.
		if rbErr := a.depositLocked(amount, "Rollback failed transfer to "+target.id); rbErr != nil {
			return fmt.Errorf("transfer rollback: %w", rbErr)
		}
		return fmt.Errorf("transfer credit: %w", err)
	}
	return nil
}

// CalculateInterest returns the interest the balance would earn now, rounded
// half-up to two decimals. It is zero for closed accounts and empty balances.
func (a *Account) CalculateInterest() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interestLocked()
}

// ApplyInterest credits CalculateInterest to the balance and returns the
// amount credited. Nothing is recorded when the interest is zero.
func (a *Account) ApplyInterest() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.active {
		return money.Zero
	}
	interest := a.interestLocked()
	if !interest.IsPositive() {
		return money.Zero
	}
	a.balance = a.balance.Add(interest)
	a.record(Interest, interest, descInterest, a.clock.Now())
	return interest
}

// Close deactivates the account. It requires a zero balance and is terminal;
// closing twice returns ErrAccountInactive and records nothing.
func (a *Account) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.active {
		return ErrAccountInactive
	}
	if !a.balance.IsZero() {
		return ErrBalanceNotZero
	}
	a.active = false
	a.record(Closure, money.Zero, descClosure, a.clock.Now())
	return nil
}

func (a *Account) depositLocked(amount decimal.Decimal, description string) error {
	if !a.active {
		return ErrAccountInactive
	}
	if !validAmount(amount) {
		return ErrInvalidAmount
	}
	amount = money.Round(amount)
	a.balance = a.balance.Add(amount)
	a.record(Deposit, amount, description, a.clock.Now())
	return nil
}

func (a *Account) withdrawLocked(amount decimal.Decimal, description string) error {
	if !a.active {
		return ErrAccountInactive
	}
	if !validAmount(amount) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}

	now := a.clock.Now()
	used := a.usedToday(now)
	if used.Add(amount).GreaterThan(a.dailyLimit) {
		return ErrDailyLimitExceeded
	}

	amount = money.Round(amount)
	a.balance = a.balance.Sub(amount)
	a.withdrawnToday = money.Round(used.Add(amount))
	a.withdrawnOn = now
	a.record(Withdrawal, amount, description, now)
	return nil
}

func (a *Account) usedToday(now time.Time) decimal.Decimal {
	if clock.DayBefore(a.withdrawnOn, now) {
		return money.Zero
	}
	return a.withdrawnToday
}

func (a *Account) interestLocked() decimal.Decimal {
	if !a.active || !a.balance.IsPositive() {
		return money.Zero
	}
	return money.Round(a.balance.Mul(a.typ.InterestRate()))
}

func (a *Account) record(kind TransactionKind, amount decimal.Decimal, description string, at time.Time) {
	a.ledger = append(a.ledger, newTransaction(kind, amount, description, at))
	a.lastActivityAt = at
}

func validAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && money.HasScale(amount)
}

func lockOrder(a, b *Account) (*Account, *Account) {
	if a.id < b.id || (a.id == b.id && a.seq < b.seq) {
		return a, b
	}
	return b, a
}
