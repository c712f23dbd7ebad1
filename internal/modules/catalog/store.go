package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Store is the single source of truth for all listings. Every mutation in
// the system funnels through this contract; no collaborator ever touches
// the underlying collection directly.
type Store interface {
	// Create validates the draft, assigns a fresh id, sets the status to
	// available and appends the listing. The owner always comes from the
	// caller's authenticated session, never from the draft.
	Create(ctx context.Context, draft ListingDraft, sellerID uuid.UUID) (*Listing, error)

	// Get returns a copy of the listing or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*Listing, error)

	// Update replaces the mutable fields of the listing with the patch.
	// Returns ErrNotFound if the id does not exist. The id and owner are
	// immutable; a patch cannot express a change to them.
	Update(ctx context.Context, id uuid.UUID, patch ListingPatch) (*Listing, error)

	// Delete removes the listing. Deleting an absent id fails with
	// ErrNotFound, including on a repeated delete.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns an insertion-ordered snapshot of every listing. The
	// snapshot is a deep copy: mutating it never affects the store.
	List(ctx context.Context) ([]*Listing, error)
}
