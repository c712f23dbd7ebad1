package auth

import "github.com/georgemunganga/carmarket-backend/internal/modules/user"

// Session holds the authenticated principal, or none. Whether the session
// counts as authenticated is always derived from the stored principal on
// read; there is no separate flag that could fall out of sync.
type Session struct {
	principal *user.User
}

// NewSession creates a session, optionally pre-bound to a principal.
func NewSession(p *user.User) *Session {
	return &Session{principal: p}
}

// SetPrincipal replaces the current principal. Passing nil logs out.
func (s *Session) SetPrincipal(p *user.User) {
	s.principal = p
}

// Principal returns the current principal, or nil when anonymous.
func (s *Session) Principal() *user.User {
	return s.principal
}

// IsAuthenticated reports whether a principal is present.
func (s *Session) IsAuthenticated() bool {
	return s.principal != nil
}
