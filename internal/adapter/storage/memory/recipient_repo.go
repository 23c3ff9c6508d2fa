package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"qa-banking-sandbox/internal/core/domain"
	"qa-banking-sandbox/internal/core/ports"
)

// RecipientRepo implements ports.RecipientRepository. New payees are
// prepended so the most recently used appear first.
type RecipientRepo struct {
	mu         sync.RWMutex
	recipients []*domain.Recipient
}

func newRecipientRepo() *RecipientRepo {
	return &RecipientRepo{}
}

func (r *RecipientRepo) List(ctx context.Context) ([]domain.Recipient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Recipient, 0, len(r.recipients))
	for _, rec := range r.recipients {
		out = append(out, *rec)
	}
	return out, nil
}

func (r *RecipientRepo) GetByAccountNumber(ctx context.Context, accountNumber string) (*domain.Recipient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.recipients {
		if rec.AccountNumber == accountNumber {
			clone := *rec
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *RecipientRepo) Create(ctx context.Context, tx ports.Tx, rec *domain.Recipient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *rec
	r.recipients = append([]*domain.Recipient{&clone}, r.recipients...)
	return nil
}

func (r *RecipientRepo) TouchLastPayment(ctx context.Context, tx ports.Tx, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.recipients {
		if rec.ID == id {
			t := at
			rec.LastPaymentAt = &t
			return nil
		}
	}
	return fmt.Errorf("recipient %s not found", id)
}
