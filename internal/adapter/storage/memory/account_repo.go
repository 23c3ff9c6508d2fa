package memory

import (
	"context"
	"fmt"
	"sync"

	"qa-banking-sandbox/internal/core/domain"
	"qa-banking-sandbox/internal/core/ports"

	"github.com/shopspring/decimal"
)

// AccountRepo implements ports.AccountRepository over a slice in seed order.
type AccountRepo struct {
	mu       sync.RWMutex
	accounts []*domain.Account
}

func newAccountRepo() *AccountRepo {
	return &AccountRepo{}
}

func (r *AccountRepo) List(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (r *AccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *AccountRepo) GetByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.AccountNumber == accountNumber {
			clone := *a
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *AccountRepo) UpdateBalance(ctx context.Context, tx ports.Tx, id string, balance decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.ID == id {
			a.Balance = balance.Round(2)
			return nil
		}
	}
	return fmt.Errorf("account %s not found", id)
}

// Add inserts an account. Not part of the port: accounts are never created
// through the API, only by seeding and test fixtures.
func (r *AccountRepo) Add(a *domain.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *a
	r.accounts = append(r.accounts, &clone)
}
