package inventory

import (
	"context"
	"testing"

	"github.com/georgemunganga/carmarket-backend/internal/modules/catalog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draft(name string) catalog.ListingDraft {
	return catalog.ListingDraft{
		Name:        name,
		Description: "a perfectly fine car",
		Price:       20000,
		ImageURL:    "https://example.com/car.jpg",
	}
}

// requireConsistent asserts the controller's local projection is exactly
// what a fresh owner-scoped load would return.
func requireConsistent(t *testing.T, c *Controller) {
	t.Helper()
	local := c.Listings()
	fresh, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, fresh, local)
}

func TestAddUsesBoundSellerID(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	seller := uuid.New()
	c := NewController(store, seller)

	l, err := c.Add(ctx, draft("Tesla Model 3"))
	require.NoError(t, err)
	assert.Equal(t, seller, l.SellerID)
	requireConsistent(t, c)
}

func TestSellersOnlySeeTheirOwnListings(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	sellerA := NewController(store, uuid.New())
	sellerB := NewController(store, uuid.New())

	created, err := sellerA.Add(ctx, draft("Ford F-150"))
	require.NoError(t, err)

	aListings, err := sellerA.Load(ctx)
	require.NoError(t, err)
	require.Len(t, aListings, 1)
	assert.Equal(t, created.ID, aListings[0].ID)

	bListings, err := sellerB.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, bListings)
}

func TestEditForeignListingIsForbidden(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	owner := NewController(store, uuid.New())
	intruder := NewController(store, uuid.New())

	l, err := owner.Add(ctx, draft("BMW X5"))
	require.NoError(t, err)

	patch := catalog.PatchOf(l)
	patch.Price = 1
	_, err = intruder.Edit(ctx, l.ID, patch)
	assert.ErrorIs(t, err, ErrForbidden)

	// The listing is untouched.
	kept, err := store.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.Price, kept.Price)
}

func TestRemoveForeignListingIsForbidden(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	owner := NewController(store, uuid.New())
	intruder := NewController(store, uuid.New())

	l, err := owner.Add(ctx, draft("Toyota Camry"))
	require.NoError(t, err)

	assert.ErrorIs(t, intruder.Remove(ctx, l.ID), ErrForbidden)

	_, err = store.Get(ctx, l.ID)
	assert.NoError(t, err)
}

func TestEditOwnListingUpdatesProjection(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	c := NewController(store, uuid.New())

	l, err := c.Add(ctx, draft("Tesla Model 3"))
	require.NoError(t, err)

	patch := catalog.PatchOf(l)
	patch.Price = 42000
	updated, err := c.Edit(ctx, l.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, float64(42000), updated.Price)
	requireConsistent(t, c)
}

func TestRemoveOwnListingUpdatesProjection(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	c := NewController(store, uuid.New())

	keep, err := c.Add(ctx, draft("keep"))
	require.NoError(t, err)
	drop, err := c.Add(ctx, draft("drop"))
	require.NoError(t, err)

	require.NoError(t, c.Remove(ctx, drop.ID))
	requireConsistent(t, c)

	listings := c.Listings()
	require.Len(t, listings, 1)
	assert.Equal(t, keep.ID, listings[0].ID)
}

func TestProjectionStaysConsistentAcrossMutations(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	c := NewController(store, uuid.New())
	other := NewController(store, uuid.New())

	// Interleave foreign listings so owner filtering is actually exercised.
	_, err := other.Add(ctx, draft("noise one"))
	require.NoError(t, err)

	first, err := c.Add(ctx, draft("first"))
	require.NoError(t, err)
	requireConsistent(t, c)

	_, err = other.Add(ctx, draft("noise two"))
	require.NoError(t, err)

	second, err := c.Add(ctx, draft("second"))
	require.NoError(t, err)
	requireConsistent(t, c)

	patch := catalog.PatchOf(second)
	patch.Description = "now with description"
	_, err = c.Edit(ctx, second.ID, patch)
	require.NoError(t, err)
	requireConsistent(t, c)

	require.NoError(t, c.Remove(ctx, first.ID))
	requireConsistent(t, c)
}

func TestEditBeforeLoadKeepsProjectionConsistent(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	seller := uuid.New()

	l, err := NewController(store, seller).Add(ctx, draft("Ford F-150"))
	require.NoError(t, err)

	// A brand-new controller for the same seller, mutating without ever
	// calling Load first — the shipped handler path.
	fresh := NewController(store, seller)
	patch := catalog.PatchOf(l)
	patch.Price = 30000
	_, err = fresh.Edit(ctx, l.ID, patch)
	require.NoError(t, err)

	listings := fresh.Listings()
	require.Len(t, listings, 1)
	assert.Equal(t, float64(30000), listings[0].Price)
	requireConsistent(t, fresh)
}

func TestRemoveBeforeLoadKeepsProjectionConsistent(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	seller := uuid.New()

	first := NewController(store, seller)
	keep, err := first.Add(ctx, draft("keep"))
	require.NoError(t, err)
	drop, err := first.Add(ctx, draft("drop"))
	require.NoError(t, err)

	fresh := NewController(store, seller)
	require.NoError(t, fresh.Remove(ctx, drop.ID))

	listings := fresh.Listings()
	require.Len(t, listings, 1)
	assert.Equal(t, keep.ID, listings[0].ID)
	requireConsistent(t, fresh)
}

func TestAddBeforeLoadKeepsProjectionConsistent(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	seller := uuid.New()

	_, err := NewController(store, seller).Add(ctx, draft("existing"))
	require.NoError(t, err)

	fresh := NewController(store, seller)
	_, err = fresh.Add(ctx, draft("new arrival"))
	require.NoError(t, err)

	assert.Len(t, fresh.Listings(), 2)
	requireConsistent(t, fresh)
}

func TestRemoveMissingListingIsNotFound(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewMemoryStore()
	c := NewController(store, uuid.New())

	err := c.Remove(ctx, uuid.New())
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
