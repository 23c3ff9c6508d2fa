package memory

import (
	"context"
	"sort"
	"sync"

	"qa-banking-sandbox/internal/core/domain"
	"qa-banking-sandbox/internal/core/ports"
)

// TransactionRepo implements ports.TransactionRepository. Entries are kept
// newest-first: appends prepend, and List re-sorts by CreatedAt descending
// so callers always see a deterministic newest-first order.
type TransactionRepo struct {
	mu      sync.RWMutex
	entries []*domain.Transaction
}

func newTransactionRepo() *TransactionRepo {
	return &TransactionRepo{}
}

func (r *TransactionRepo) Append(ctx context.Context, tx ports.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *t
	r.entries = append([]*domain.Transaction{&clone}, r.entries...)
	return nil
}

func (r *TransactionRepo) List(ctx context.Context, accountID string, limit int) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transaction, 0, len(r.entries))
	for _, t := range r.entries {
		if accountID != "" && t.AccountID != accountID {
			continue
		}
		out = append(out, *t)
	}

	// Entries sharing a timestamp (one transfer's debit/fee/credit) keep
	// their insertion order; the stable sort only reorders across instants.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
