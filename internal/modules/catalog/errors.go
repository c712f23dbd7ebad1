package catalog

import "errors"

var (
	// ErrNotFound is returned when an operation references a listing id
	// that does not exist in the store.
	ErrNotFound = errors.New("listing not found")

	// ErrInvalidListing is returned when a draft or patch is missing
	// required fields or carries an out-of-range price or status.
	ErrInvalidListing = errors.New("listing is missing required fields")
)
