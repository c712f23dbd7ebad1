package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu       sync.Mutex
	listings []*Listing
}

// NewMemoryStore creates the in-memory catalog store. Listings live for the
// process lifetime only and keep their insertion order.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Create(ctx context.Context, draft ListingDraft, sellerID uuid.UUID) (*Listing, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	l := &Listing{
		ID:          uuid.New(),
		SellerID:    sellerID,
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		ImageURL:    draft.ImageURL,
		Status:      StatusAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.listings = append(s.listings, l)

	copied := *l
	return &copied, nil
}

func (s *memoryStore) Get(ctx context.Context, id uuid.UUID) (*Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.find(id)
	if l == nil {
		return nil, ErrNotFound
	}
	copied := *l
	return &copied, nil
}

func (s *memoryStore) Update(ctx context.Context, id uuid.UUID, patch ListingPatch) (*Listing, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.find(id)
	if l == nil {
		return nil, ErrNotFound
	}

	l.Name = patch.Name
	l.Description = patch.Description
	l.Price = patch.Price
	l.ImageURL = patch.ImageURL
	if patch.Status != "" {
		l.Status = patch.Status
	}
	l.UpdatedAt = time.Now().UTC()

	copied := *l
	return &copied, nil
}

func (s *memoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.listings {
		if l.ID == id {
			s.listings = append(s.listings[:i], s.listings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *memoryStore) List(ctx context.Context) ([]*Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*Listing, len(s.listings))
	for i, l := range s.listings {
		copied := *l
		snapshot[i] = &copied
	}
	return snapshot, nil
}

// find returns the live record for id; callers hold the lock.
func (s *memoryStore) find(id uuid.UUID) *Listing {
	for _, l := range s.listings {
		if l.ID == id {
			return l
		}
	}
	return nil
}
