package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned on a failed login. The same error
// covers an unknown email and a wrong password so the response does not
// leak which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}
