package bank

import (
	"context"
	"errors"

	"github.com/congo-pay/corebank/internal/account"
)

var (
	// ErrAccountNotFound is returned when no account has the requested id.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists is returned when opening an id that is already taken.
	ErrAccountExists = errors.New("account already exists")
)

// Repository stores live accounts by id.
type Repository interface {
	Create(ctx context.Context, acct *account.Account) error
	Get(ctx context.Context, id string) (*account.Account, error)
	List(ctx context.Context) ([]*account.Account, error)
}
