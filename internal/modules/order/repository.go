package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for orders.
type Repository interface {
	// CreateOrder appends a new order record.
	CreateOrder(ctx context.Context, o *Order) error

	// ListOrdersByBuyer returns all orders placed by a buyer, oldest first.
	ListOrdersByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*Order, error)
}
