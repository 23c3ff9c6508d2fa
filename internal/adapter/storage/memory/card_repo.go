package memory

import (
	"context"
	"sync"

	"qa-banking-sandbox/internal/core/domain"
)

// CardRepo implements ports.CardRepository. Cards are static reference data;
// only seeding writes to it.
type CardRepo struct {
	mu    sync.RWMutex
	cards []*domain.Card
}

func newCardRepo() *CardRepo {
	return &CardRepo{}
}

func (r *CardRepo) List(ctx context.Context, accountID string) ([]domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Card, 0, len(r.cards))
	for _, c := range r.cards {
		if accountID != "" && c.AccountID != accountID {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

// Add inserts a card. Cards have no issuance flow; only seeding and test
// fixtures write here.
func (r *CardRepo) Add(c *domain.Card) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *c
	r.cards = append(r.cards, &clone)
}
