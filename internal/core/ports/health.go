package ports

import "context"

// HealthChecker checks a dependency of the service.
type HealthChecker interface {
	// Ping verifies the dependency is usable. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "ledger-store").
	Name() string
}
