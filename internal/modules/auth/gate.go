package auth

import "github.com/georgemunganga/carmarket-backend/internal/modules/user"

// Route targets used by the gate and the landing router. The concrete
// syntax lives here alone; the gate itself only hands targets to an
// abstract navigation capability.
const (
	RouteLanding         = "/"
	RouteSellerDashboard = "/api/v1/seller/listings"
	RouteBrowse          = "/api/v1/catalog/listings"
)

// GateState classifies one screen visit.
type GateState string

const (
	GateUnauthenticated GateState = "unauthenticated"
	GateWrongRole       GateState = "wrong_role"
	GateAuthorized      GateState = "authorized"
)

// Decision is the outcome of a gate check. Redirect is non-empty exactly
// when the visit is not authorized.
type Decision struct {
	State    GateState
	Redirect string
}

// Authorized reports whether the screen content may render.
func (d Decision) Authorized() bool { return d.State == GateAuthorized }

// CheckAccess runs the per-screen state machine: no principal redirects to
// the landing screen, a principal with the wrong role likewise, anything
// else renders. An empty required role admits any authenticated principal.
// The decision is computed fresh on every visit and never cached.
func CheckAccess(s *Session, required user.Role) Decision {
	p := s.Principal()
	if p == nil {
		return Decision{State: GateUnauthenticated, Redirect: RouteLanding}
	}
	if required != "" && p.Role != required {
		return Decision{State: GateWrongRole, Redirect: RouteLanding}
	}
	return Decision{State: GateAuthorized}
}

// LandingState classifies a visit to the landing screen itself.
type LandingState string

const (
	LandingAnonymous    LandingState = "anonymous"
	LandingRoutedSeller LandingState = "routed_seller"
	LandingRoutedBuyer  LandingState = "routed_buyer"
)

// Landing performs the inverse routing of the gate: an authenticated
// principal visiting the landing screen is sent to their home screen,
// driven solely by role.
func Landing(p *user.User) (LandingState, string) {
	switch {
	case p == nil:
		return LandingAnonymous, ""
	case p.Role == user.RoleSeller:
		return LandingRoutedSeller, RouteSellerDashboard
	default:
		return LandingRoutedBuyer, RouteBrowse
	}
}
