package order

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Order records a buyer's purchase of a listing. Orders are append-only:
// once created they are never updated or removed by this system.
type Order struct {
	ID        uuid.UUID   `json:"id"`
	ListingID uuid.UUID   `json:"listing_id"`
	BuyerID   uuid.UUID   `json:"buyer_id"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
