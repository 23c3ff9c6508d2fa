package memory

import (
	"context"
	"sync"

	"qa-banking-sandbox/internal/core/domain"
	"qa-banking-sandbox/internal/core/ports"
)

// ProductRequestRepo implements ports.ProductRequestRepository. New requests
// are prepended, newest first.
type ProductRequestRepo struct {
	mu       sync.RWMutex
	requests []*domain.ProductRequest
}

func newProductRequestRepo() *ProductRequestRepo {
	return &ProductRequestRepo{}
}

func (r *ProductRequestRepo) List(ctx context.Context, accountID string) ([]domain.ProductRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ProductRequest, 0, len(r.requests))
	for _, req := range r.requests {
		if accountID != "" && req.AccountID != accountID {
			continue
		}
		out = append(out, *req)
	}
	return out, nil
}

func (r *ProductRequestRepo) Create(ctx context.Context, tx ports.Tx, req *domain.ProductRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *req
	r.requests = append([]*domain.ProductRequest{&clone}, r.requests...)
	return nil
}
