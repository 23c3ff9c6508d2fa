package memory

import (
	"context"
	"sync"

	"qa-banking-sandbox/internal/core/ports"
)

// Transactor implements ports.Transactor with a store-wide writer lock.
// Begin acquires it; Commit or Rollback release it exactly once. This gives
// mutating operations the same atomicity the single-threaded reference had:
// balance and its trailing transaction's balanceAfter can never be observed
// mid-divergence by another mutating request.
type Transactor struct {
	mu sync.Mutex
}

// NewTransactor creates a Transactor.
func NewTransactor() *Transactor {
	return &Transactor{}
}

// Begin blocks until exclusive write access is held.
func (t *Transactor) Begin(ctx context.Context) (ports.Tx, error) {
	t.mu.Lock()
	return &memTx{release: t.mu.Unlock}, nil
}

type memTx struct {
	once    sync.Once
	release func()
}

func (t *memTx) Commit(ctx context.Context) error {
	t.once.Do(t.release)
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	t.once.Do(t.release)
	return nil
}
