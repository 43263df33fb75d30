package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is one immutable ledger entry. Values are only produced by
// successful Account mutations.
type Transaction struct {
	ID          string
	Kind        TransactionKind
	Amount      decimal.Decimal
	Description string
	Timestamp   time.Time
}

func newTransaction(kind TransactionKind, amount decimal.Decimal, description string, at time.Time) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Timestamp:   at,
	}
}
