package service

import (
	"context"

	"qa-banking-sandbox/internal/core/domain"
	"qa-banking-sandbox/internal/core/ports"
)

// ReportingServiceImpl implements ports.ReportingService. Every method is a
// pure projection over the store; nothing here mutates state.
type ReportingServiceImpl struct {
	accounts   ports.AccountRepository
	txns       ports.TransactionRepository
	recipients ports.RecipientRepository
	cards      ports.CardRepository
	requests   ports.ProductRequestRepository
}

// NewReportingService creates a new ReportingServiceImpl.
func NewReportingService(
	accounts ports.AccountRepository,
	txns ports.TransactionRepository,
	recipients ports.RecipientRepository,
	cards ports.CardRepository,
	requests ports.ProductRequestRepository,
) *ReportingServiceImpl {
	return &ReportingServiceImpl{
		accounts:   accounts,
		txns:       txns,
		recipients: recipients,
		cards:      cards,
		requests:   requests,
	}
}

func (s *ReportingServiceImpl) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.List(ctx)
}

// GetAccount returns the account or (nil, nil) when unknown.
func (s *ReportingServiceImpl) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// FindAccountByNumber returns the account or (nil, nil) when the number does
// not belong to this bank.
func (s *ReportingServiceImpl) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	return s.accounts.GetByNumber(ctx, accountNumber)
}

// ListTransactions returns entries newest-first, optionally filtered by
// account and trimmed to limit (callers render the top N).
func (s *ReportingServiceImpl) ListTransactions(ctx context.Context, accountID string, limit int) ([]domain.Transaction, error) {
	return s.txns.List(ctx, accountID, limit)
}

func (s *ReportingServiceImpl) ListRecipients(ctx context.Context) ([]domain.Recipient, error) {
	return s.recipients.List(ctx)
}

func (s *ReportingServiceImpl) ListCards(ctx context.Context, accountID string) ([]domain.Card, error) {
	return s.cards.List(ctx, accountID)
}

func (s *ReportingServiceImpl) ListProductRequests(ctx context.Context, accountID string) ([]domain.ProductRequest, error) {
	return s.requests.List(ctx, accountID)
}
