package catalog

import (
	"time"

	"github.com/google/uuid"
)

// ListingStatus represents the lifecycle state of a listing.
type ListingStatus string

const (
	StatusAvailable ListingStatus = "available"
	StatusPending   ListingStatus = "pending"
	StatusSold      ListingStatus = "sold"
)

// Valid reports whether s is one of the known listing statuses.
func (s ListingStatus) Valid() bool {
	return s == StatusAvailable || s == StatusPending || s == StatusSold
}

// MinListingPrice is the lowest price a draft may carry.
const MinListingPrice = 1

// Listing is a car offered for sale by exactly one seller.
type Listing struct {
	ID          uuid.UUID     `json:"id"`
	SellerID    uuid.UUID     `json:"seller_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	ImageURL    string        `json:"image_url"`
	Status      ListingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ListingDraft holds the seller-supplied fields for a new listing. The
// owner and status are never part of a draft: the owner comes from the
// authenticated session and every new listing starts out available.
type ListingDraft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

// Validate checks the structural invariants the store defends even though
// form validation happens upstream.
func (d ListingDraft) Validate() error {
	if d.Name == "" || d.Description == "" || d.ImageURL == "" {
		return ErrInvalidListing
	}
	if d.Price < MinListingPrice {
		return ErrInvalidListing
	}
	return nil
}

// ListingPatch carries the mutable fields of a listing. ID and SellerID are
// deliberately absent: a patch cannot express a change to an immutable
// field, so such attempts are structurally ignored.
type ListingPatch struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	ImageURL    string        `json:"image_url"`
	Status      ListingStatus `json:"status"`
}

// Validate holds a patch to the same structural bar as a draft: the store
// must never end up with a listing a Create would have rejected. An empty
// status means "keep the current one" and passes.
func (p ListingPatch) Validate() error {
	if p.Name == "" || p.Description == "" || p.ImageURL == "" {
		return ErrInvalidListing
	}
	if p.Price < MinListingPrice {
		return ErrInvalidListing
	}
	if p.Status != "" && !p.Status.Valid() {
		return ErrInvalidListing
	}
	return nil
}

// PatchOf builds a patch replicating the listing's current mutable fields,
// for callers that want to change a single field of a fetched snapshot.
func PatchOf(l *Listing) ListingPatch {
	return ListingPatch{
		Name:        l.Name,
		Description: l.Description,
		Price:       l.Price,
		ImageURL:    l.ImageURL,
		Status:      l.Status,
	}
}
