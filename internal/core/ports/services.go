package ports

import (
	"context"

	"qa-banking-sandbox/internal/core/domain"

	"github.com/shopspring/decimal"
)

// TransferRequest is the validated command for a transfer.
type TransferRequest struct {
	FromAccountID   string
	ToAccountNumber string
	Amount          decimal.Decimal
	Description     string
}

// TransferResult is what a successful transfer produced.
type TransferResult struct {
	Transfer     domain.Transaction  `json:"transfer"`
	Fee          *domain.Transaction `json:"fee"`
	Commission   decimal.Decimal     `json:"commission"`
	TotalDebited decimal.Decimal     `json:"totalDebited"`
	IsInternal   bool                `json:"isInternal"`
}

// TopUpRequest is the validated command for an account top-up.
type TopUpRequest struct {
	AccountID   string
	Amount      decimal.Decimal
	Description string
}

// LedgerService performs balance-mutating operations.
type LedgerService interface {
	CreateTransfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
	CreateTopUp(ctx context.Context, req TopUpRequest) (*domain.Transaction, error)
}

// ProductRequestInput is the validated command for a product request.
type ProductRequestInput struct {
	AccountID   string
	ProductType domain.ProductType
	ProductName string
	EtaDays     int
	Note        string
}

// ProductService creates product requests.
type ProductService interface {
	CreateProductRequest(ctx context.Context, in ProductRequestInput) (*domain.ProductRequest, error)
}

// ReportingService exposes side-effect-free projections over the store.
type ReportingService interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	ListTransactions(ctx context.Context, accountID string, limit int) ([]domain.Transaction, error)
	ListRecipients(ctx context.Context) ([]domain.Recipient, error)
	ListCards(ctx context.Context, accountID string) ([]domain.Card, error)
	ListProductRequests(ctx context.Context, accountID string) ([]domain.ProductRequest, error)
}
