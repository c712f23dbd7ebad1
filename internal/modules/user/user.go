package user

import (
	"time"

	"github.com/google/uuid"
)

// Role determines which side of the marketplace a user acts on.
// It is fixed at signup and never changes afterwards.
type Role string

const (
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleSeller || r == RoleBuyer
}

// User represents a registered principal, either a seller or a buyer.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
