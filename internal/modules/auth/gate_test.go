package auth

import (
	"testing"

	"github.com/georgemunganga/carmarket-backend/internal/modules/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func seller() *user.User {
	return &user.User{ID: uuid.New(), Username: "seller_john", Role: user.RoleSeller}
}

func buyer() *user.User {
	return &user.User{ID: uuid.New(), Username: "buyer_jane", Role: user.RoleBuyer}
}

func TestGateUnauthenticatedRedirectsToLanding(t *testing.T) {
	d := CheckAccess(NewSession(nil), user.RoleSeller)

	assert.Equal(t, GateUnauthenticated, d.State)
	assert.Equal(t, RouteLanding, d.Redirect)
	assert.False(t, d.Authorized())
}

func TestGateWrongRoleRedirectsToLanding(t *testing.T) {
	d := CheckAccess(NewSession(buyer()), user.RoleSeller)

	assert.Equal(t, GateWrongRole, d.State)
	assert.Equal(t, RouteLanding, d.Redirect)
	assert.False(t, d.Authorized())
}

func TestGateMatchingRoleAuthorizes(t *testing.T) {
	d := CheckAccess(NewSession(seller()), user.RoleSeller)

	assert.Equal(t, GateAuthorized, d.State)
	assert.Empty(t, d.Redirect)
	assert.True(t, d.Authorized())
}

func TestGateEmptyRoleAdmitsAnyAuthenticated(t *testing.T) {
	assert.True(t, CheckAccess(NewSession(seller()), "").Authorized())
	assert.True(t, CheckAccess(NewSession(buyer()), "").Authorized())
	assert.False(t, CheckAccess(NewSession(nil), "").Authorized())
}

func TestLandingRoutesByRole(t *testing.T) {
	state, target := Landing(nil)
	assert.Equal(t, LandingAnonymous, state)
	assert.Empty(t, target)

	state, target = Landing(seller())
	assert.Equal(t, LandingRoutedSeller, state)
	assert.Equal(t, RouteSellerDashboard, target)

	state, target = Landing(buyer())
	assert.Equal(t, LandingRoutedBuyer, state)
	assert.Equal(t, RouteBrowse, target)
}

func TestSessionAuthenticationIsDerived(t *testing.T) {
	s := NewSession(nil)
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.Principal())

	p := buyer()
	s.SetPrincipal(p)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, p, s.Principal())

	s.SetPrincipal(nil)
	assert.False(t, s.IsAuthenticated())
}
