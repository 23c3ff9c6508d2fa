package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"qa-banking-sandbox/internal/core/domain"
	"qa-banking-sandbox/internal/core/ports"
	"qa-banking-sandbox/pkg/apperror"

	"github.com/rs/zerolog"
)

// ProductServiceImpl implements ports.ProductService.
type ProductServiceImpl struct {
	accounts   ports.AccountRepository
	requests   ports.ProductRequestRepository
	transactor ports.Transactor
	log        zerolog.Logger
	now        func() time.Time
}

// NewProductService creates a new ProductServiceImpl.
func NewProductService(
	accounts ports.AccountRepository,
	requests ports.ProductRequestRepository,
	transactor ports.Transactor,
	log zerolog.Logger,
) *ProductServiceImpl {
	return &ProductServiceImpl{
		accounts:   accounts,
		requests:   requests,
		transactor: transactor,
		log:        log,
		now:        time.Now,
	}
}

// CreateProductRequest records a pending request for a new card or account
// product. EtaDays is clamped to at least 1; the estimated-ready date uses
// calendar-correct addition, so month and year boundaries roll over.
func (s *ProductServiceImpl) CreateProductRequest(ctx context.Context, in ports.ProductRequestInput) (*domain.ProductRequest, error) {
	if in.ProductType != domain.ProductTypeCard && in.ProductType != domain.ProductTypeAccount {
		return nil, apperror.ErrRequestValidation("unknown product type")
	}
	if strings.TrimSpace(in.ProductName) == "" {
		return nil, apperror.ErrRequestValidation("product name is required")
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	account, err := s.accounts.GetByID(ctx, in.AccountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}

	etaDays := in.EtaDays
	if etaDays < 1 {
		etaDays = 1
	}

	submittedAt := s.now().UTC()
	request := domain.ProductRequest{
		ID:               domain.NewID("req"),
		AccountID:        account.ID,
		ProductType:      in.ProductType,
		ProductName:      in.ProductName,
		SubmittedAt:      submittedAt,
		Status:           domain.RequestStatusPending,
		EstimatedReadyAt: submittedAt.AddDate(0, 0, etaDays),
		Note:             strings.TrimSpace(in.Note),
	}
	if err := s.requests.Create(ctx, tx, &request); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create request: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit: %w", err))
	}

	s.log.Info().
		Str("request_id", request.ID).
		Str("account", account.ID).
		Str("product_type", string(request.ProductType)).
		Int("eta_days", etaDays).
		Msg("product request created")

	return &request, nil
}
