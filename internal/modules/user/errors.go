package user

import "errors"

var (
	// ErrInvalidRole is returned when a signup names a role outside
	// seller/buyer.
	ErrInvalidRole = errors.New("role must be seller or buyer")

	// ErrEmailTaken is returned when a signup reuses an existing email.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrMissingFields is returned when a signup leaves username, email or
	// password blank.
	ErrMissingFields = errors.New("username, email and password are required")

	// ErrNotFound is returned when no user matches the given id or email.
	ErrNotFound = errors.New("user not found")
)
