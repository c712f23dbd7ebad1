package order

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu     sync.Mutex
	orders []*Order
}

// NewMemoryRepository creates an in-memory, append-only order log.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) CreateOrder(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *o
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.orders = append(r.orders, &stored)

	o.CreatedAt = stored.CreatedAt
	return nil
}

func (r *memoryRepository) ListOrdersByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Order
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			copied := *o
			out = append(out, &copied)
		}
	}
	return out, nil
}
