package auth

import (
	"testing"

	"scoutlink-server/internal/profile"

	"github.com/google/uuid"
)

func sessionUser(role profile.Role) *SessionUser {
	return &SessionUser{
		ProfileID: uuid.New(),
		Email:     "user@example.com",
		Role:      role,
	}
}

func TestDecideUnauthenticatedAlwaysRedirectsToLogin(t *testing.T) {
	for _, req := range []Requirement{RequireAuthenticated, RequireAdminRole, RequireDashboardRole} {
		if got := Decide(nil, req); got != DecisionRedirectLogin {
			t.Errorf("Decide(nil, %d) = %v, want redirect_login", req, got)
		}
	}
}

func TestDecideAdminPageDeniesEveryNonAdminRole(t *testing.T) {
	nonAdmin := []profile.Role{
		profile.RolePlayer,
		profile.RoleCoach,
		profile.RoleAgent,
		profile.RoleManager,
		profile.RoleClubStaff,
		profile.RoleNone,
	}
	for _, role := range nonAdmin {
		if got := Decide(sessionUser(role), RequireAdminRole); got != DecisionDeny {
			t.Errorf("role %q on admin page: got %v, want deny", role, got)
		}
	}

	if got := Decide(sessionUser(profile.RoleAdmin), RequireAdminRole); got != DecisionAllow {
		t.Errorf("admin on admin page: got %v, want allow", got)
	}
}

func TestDecideDashboardFallsBackForIncompleteProfile(t *testing.T) {
	if got := Decide(sessionUser(profile.RoleNone), RequireDashboardRole); got != DecisionFallback {
		t.Errorf("role none on dashboard: got %v, want fallback", got)
	}

	for _, role := range []profile.Role{
		profile.RolePlayer,
		profile.RoleCoach,
		profile.RoleAgent,
		profile.RoleManager,
		profile.RoleClubStaff,
		profile.RoleAdmin,
	} {
		if got := Decide(sessionUser(role), RequireDashboardRole); got != DecisionAllow {
			t.Errorf("role %q on dashboard: got %v, want allow", role, got)
		}
	}
}

func TestDecideAuthenticatedPageAdmitsAnyRole(t *testing.T) {
	if got := Decide(sessionUser(profile.RoleNone), RequireAuthenticated); got != DecisionAllow {
		t.Errorf("role none on authenticated page: got %v, want allow", got)
	}
}

func TestDecideUnknownRequirementFailsClosed(t *testing.T) {
	if got := Decide(sessionUser(profile.RoleAdmin), Requirement(99)); got != DecisionDeny {
		t.Errorf("unknown requirement: got %v, want deny", got)
	}
}
