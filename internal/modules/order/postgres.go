package order

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepository struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL order repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateOrder(ctx context.Context, o *Order) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, listing_id, buyer_id, status)
		VALUES ($1, $2, $3, $4)`,
		o.ID, o.ListingID, o.BuyerID, o.Status)
	return err
}

func (r *postgresRepository) ListOrdersByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, listing_id, buyer_id, status, created_at
		FROM orders
		WHERE buyer_id = $1
		ORDER BY created_at ASC`, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		if err := rows.Scan(&o.ID, &o.ListingID, &o.BuyerID, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
