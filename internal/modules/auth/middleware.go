package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/georgemunganga/carmarket-backend/internal/modules/user"
)

type principalKey struct{}

// WithPrincipal stores the authenticated principal on the context.
func WithPrincipal(ctx context.Context, p *user.User) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal a passed gate stored on the context.
func PrincipalFrom(ctx context.Context) (*user.User, bool) {
	p, ok := ctx.Value(principalKey{}).(*user.User)
	return p, ok
}

// Middleware resolves the bearer token to a principal and applies the
// access gate in front of gated routes.
type Middleware struct {
	users  user.Repository
	jwtKey []byte
}

// NewMiddleware creates the gate middleware verifying tokens with the
// given key.
func NewMiddleware(users user.Repository, jwtKey []byte) *Middleware {
	return &Middleware{users: users, jwtKey: jwtKey}
}

// RequireRole wraps a route in the access gate. The gate is evaluated on
// every request; an unauthorized visit is redirected to the landing screen
// and the wrapped handler never runs. An empty role admits any
// authenticated principal.
func (m *Middleware) RequireRole(required user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := NewSession(m.PrincipalFromRequest(r))

			decision := CheckAccess(session, required)
			if !decision.Authorized() {
				http.Redirect(w, r, decision.Redirect, http.StatusSeeOther)
				return
			}

			ctx := WithPrincipal(r.Context(), session.Principal())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromRequest resolves the request's bearer token to a principal.
// Returns nil for a missing, invalid or expired token, or when the subject
// no longer exists.
func (m *Middleware) PrincipalFromRequest(r *http.Request) *user.User {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	p, err := m.users.GetUserByID(r.Context(), claims.Subject)
	if err != nil {
		return nil
	}
	return p
}
