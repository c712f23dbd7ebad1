package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterUserHashesPassword(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	u, err := svc.RegisterUser(context.Background(), "seller_john", "john@example.com", "password123", RoleSeller)
	require.NoError(t, err)

	assert.Equal(t, RoleSeller, u.Role)
	assert.NotEqual(t, "password123", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")))
}

func TestRegisterUserRejectsUnknownRole(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, err := svc.RegisterUser(context.Background(), "x", "x@example.com", "pw", Role("admin"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterUserRejectsBlankFields(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	cases := map[string][3]string{
		"blank username": {"", "x@example.com", "pw123"},
		"blank email":    {"x", "", "pw123"},
		"blank password": {"x", "x@example.com", ""},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.RegisterUser(ctx, c[0], c[1], c[2], RoleBuyer)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "first", "same@example.com", "pw123", RoleBuyer)
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, "second", "same@example.com", "pw123", RoleSeller)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetUserRoundTrip(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	created, err := svc.RegisterUser(ctx, "buyer_jane", "jane@example.com", "pw123", RoleBuyer)
	require.NoError(t, err)

	fetched, err := svc.GetUser(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Email, fetched.Email)
}
