package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Service defines catalog business logic for the buyer-facing side.
type Service interface {
	// Browse returns the listings matching the criteria, in insertion order.
	Browse(ctx context.Context, c Criteria) ([]*Listing, error)

	// GetListing retrieves a single listing by id.
	GetListing(ctx context.Context, id string) (*Listing, error)
}

type service struct{ store Store }

// NewService creates a new catalog service over the shared store.
func NewService(store Store) Service { return &service{store: store} }

func (s *service) Browse(ctx context.Context, c Criteria) ([]*Listing, error) {
	listings, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(listings, c), nil
}

func (s *service) GetListing(ctx context.Context, id string) (*Listing, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.store.Get(ctx, parsed)
}
