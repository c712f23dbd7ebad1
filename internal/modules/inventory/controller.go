package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgemunganga/carmarket-backend/internal/modules/catalog"
	"github.com/google/uuid"
)

// ErrForbidden is returned when a seller tries to mutate a listing they do
// not own.
var ErrForbidden = errors.New("listing is not owned by this seller")

// Controller gives one seller an owner-scoped view and mutation surface
// over the shared catalog store. It holds a local projection of the
// seller's listings which every mutation keeps identical to what a fresh
// Load would return. The projection lives for one screen session; a new
// visit builds a new controller.
type Controller struct {
	store      catalog.Store
	sellerID   uuid.UUID
	loaded     bool
	projection []*catalog.Listing
}

// NewController binds a controller to the authenticated seller. The seller
// id always comes from the session, never from request payloads.
func NewController(store catalog.Store, sellerID uuid.UUID) *Controller {
	return &Controller{store: store, sellerID: sellerID}
}

// Load recomputes the projection from a fresh store snapshot.
func (c *Controller) Load(ctx context.Context) ([]*catalog.Listing, error) {
	all, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading seller listings: %w", err)
	}

	projection := make([]*catalog.Listing, 0, len(all))
	for _, l := range all {
		if l.SellerID == c.sellerID {
			projection = append(projection, l)
		}
	}
	c.projection = projection
	c.loaded = true
	return c.Listings(), nil
}

// ensureLoaded builds the projection before the first mutation so a
// controller that mutates straight away still ends up consistent with the
// store.
func (c *Controller) ensureLoaded(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	_, err := c.Load(ctx)
	return err
}

// Listings returns the current projection without touching the store.
func (c *Controller) Listings() []*catalog.Listing {
	out := make([]*catalog.Listing, len(c.projection))
	copy(out, c.projection)
	return out
}

// Add creates a listing owned by the bound seller and appends it to the
// projection.
func (c *Controller) Add(ctx context.Context, draft catalog.ListingDraft) (*catalog.Listing, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	l, err := c.store.Create(ctx, draft, c.sellerID)
	if err != nil {
		return nil, err
	}
	c.projection = append(c.projection, l)
	return l, nil
}

// Edit replaces the mutable fields of one of the seller's listings. The
// ownership check happens here, in this layer, not in the caller.
func (c *Controller) Edit(ctx context.Context, id uuid.UUID, patch catalog.ListingPatch) (*catalog.Listing, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	if err := c.checkOwnership(ctx, id); err != nil {
		return nil, err
	}

	updated, err := c.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	for i, l := range c.projection {
		if l.ID == id {
			c.projection[i] = updated
			break
		}
	}
	return updated, nil
}

// Remove deletes one of the seller's listings and drops it from the
// projection.
func (c *Controller) Remove(ctx context.Context, id uuid.UUID) error {
	if err := c.ensureLoaded(ctx); err != nil {
		return err
	}
	if err := c.checkOwnership(ctx, id); err != nil {
		return err
	}

	if err := c.store.Delete(ctx, id); err != nil {
		return err
	}
	for i, l := range c.projection {
		if l.ID == id {
			c.projection = append(c.projection[:i], c.projection[i+1:]...)
			break
		}
	}
	return nil
}

func (c *Controller) checkOwnership(ctx context.Context, id uuid.UUID) error {
	l, err := c.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if l.SellerID != c.sellerID {
		return ErrForbidden
	}
	return nil
}
