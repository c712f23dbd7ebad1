package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdersAreScopedToBuyer(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	jane, sara := uuid.New(), uuid.New()

	first := &Order{ID: uuid.New(), ListingID: uuid.New(), BuyerID: jane, Status: StatusPending}
	second := &Order{ID: uuid.New(), ListingID: uuid.New(), BuyerID: jane, Status: StatusCompleted}
	other := &Order{ID: uuid.New(), ListingID: uuid.New(), BuyerID: sara, Status: StatusPending}
	for _, o := range []*Order{first, second, other} {
		require.NoError(t, repo.CreateOrder(ctx, o))
	}

	orders, err := repo.ListOrdersByBuyer(ctx, jane)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
	assert.False(t, orders[0].CreatedAt.IsZero())
}
