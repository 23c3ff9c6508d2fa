package memory

import "context"

// HealthCheck implements ports.HealthChecker for the in-memory store.
type HealthCheck struct {
	store *Store
}

// NewHealthCheck creates a ledger store health checker.
func NewHealthCheck(store *Store) *HealthCheck {
	return &HealthCheck{store: store}
}

// Ping verifies the store is wired and readable.
func (h *HealthCheck) Ping(ctx context.Context) error {
	_, err := h.store.Accounts.List(ctx)
	return err
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "ledger-store"
}
