package ports

import (
	"context"
	"time"

	"qa-banking-sandbox/internal/core/domain"

	"github.com/shopspring/decimal"
)

// AccountRepository defines store operations for accounts. Lookups return
// (nil, nil) when no account matches.
type AccountRepository interface {
	List(ctx context.Context) ([]domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Tx, id string, balance decimal.Decimal) error
}

// TransactionRepository defines store operations for ledger entries.
// Entries are append-only; List returns newest-first.
type TransactionRepository interface {
	Append(ctx context.Context, tx Tx, t *domain.Transaction) error
	// List returns transactions newest-first, optionally filtered by account
	// id (empty = all) and trimmed to limit entries (0 = no trim).
	List(ctx context.Context, accountID string, limit int) ([]domain.Transaction, error)
}

// RecipientRepository defines store operations for saved payees.
type RecipientRepository interface {
	List(ctx context.Context) ([]domain.Recipient, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) (*domain.Recipient, error)
	Create(ctx context.Context, tx Tx, r *domain.Recipient) error
	TouchLastPayment(ctx context.Context, tx Tx, id string, at time.Time) error
}

// CardRepository defines read-only store operations for cards.
type CardRepository interface {
	List(ctx context.Context, accountID string) ([]domain.Card, error)
}

// ProductRequestRepository defines store operations for product requests.
type ProductRequestRepository interface {
	List(ctx context.Context, accountID string) ([]domain.ProductRequest, error)
	Create(ctx context.Context, tx Tx, r *domain.ProductRequest) error
}

// Tx is a handle over a store mutation scope.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Transactor serializes mutating operations against the store. Begin blocks
// until the caller holds exclusive write access; Commit or Rollback release
// it. Services validate before mutating, so Rollback never undoes state.
type Transactor interface {
	Begin(ctx context.Context) (Tx, error)
}
