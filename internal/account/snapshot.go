package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is a consistent, copyable view of an account at one instant.
type Snapshot struct {
	ID                   string
	Type                 Type
	Balance              decimal.Decimal
	Active               bool
	DailyWithdrawalLimit decimal.Decimal
	WithdrawnToday       decimal.Decimal
	LastActivityAt       time.Time
	Transactions         int
}

// Snapshot captures every scalar field under a single lock.
func (a *Account) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{
		ID:                   a.id,
		Type:                 a.typ,
		Balance:              a.balance,
		Active:               a.active,
		DailyWithdrawalLimit: a.dailyLimit,
		WithdrawnToday:       a.usedToday(a.clock.Now()),
		LastActivityAt:       a.lastActivityAt,
		Transactions:         len(a.ledger),
	}
}

// ID returns the immutable account identifier.
func (a *Account) ID() string { return a.id }

// Type returns the immutable account type.
func (a *Account) Type() Type { return a.typ }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Active reports whether the account is still open.
func (a *Account) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// DailyWithdrawalLimit returns the ceiling fixed at construction.
func (a *Account) DailyWithdrawalLimit() decimal.Decimal { return a.dailyLimit }

// WithdrawnToday returns the sum withdrawn on the current calendar day.
func (a *Account) WithdrawnToday() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.usedToday(a.clock.Now())
}

// LastActivityAt returns the time of the most recent successful mutation, or
// the opening time if there has been none.
func (a *Account) LastActivityAt() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastActivityAt
}

// Transactions returns a copy of the ledger in chronological order.
func (a *Account) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transaction, len(a.ledger))
	copy(out, a.ledger)
	return out
}

// Len returns the number of ledger entries.
func (a *Account) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.ledger)
}
