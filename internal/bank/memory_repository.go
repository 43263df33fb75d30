package bank

import (
	"context"
	"sort"
	"sync"

	"github.com/congo-pay/corebank/internal/account"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]*account.Account
}

// NewMemoryRepository constructs a process-local repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]*account.Account)}
}

func (r *memoryRepository) Create(_ context.Context, acct *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.storage[acct.ID()]; exists {
		return ErrAccountExists
	}
	r.storage[acct.ID()] = acct
	return nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acct, ok := r.storage[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return acct, nil
}

func (r *memoryRepository) List(_ context.Context) ([]*account.Account, error) {
	r.mu.RLock()
	out := make([]*account.Account, 0, len(r.storage))
	for _, acct := range r.storage {
		out = append(out, acct)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}
