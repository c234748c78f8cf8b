package auth

import "scoutlink-server/internal/profile"

// Requirement describes what a protected page demands of the caller.
type Requirement int

const (
	// RequireAuthenticated admits any signed-in user.
	RequireAuthenticated Requirement = iota
	// RequireAdminRole admits only profiles with the admin role.
	RequireAdminRole
	// RequireDashboardRole admits signed-in users; those without a
	// dedicated dashboard variant get the generic fallback.
	RequireDashboardRole
)

// Decision is the gate outcome for a request.
type Decision int

const (
	// DecisionAllow renders the requested page.
	DecisionAllow Decision = iota
	// DecisionRedirectLogin sends the caller to the login page.
	DecisionRedirectLogin
	// DecisionDeny renders access denied without leaking page content.
	DecisionDeny
	// DecisionFallback renders the generic profile-completion view.
	DecisionFallback
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionDeny:
		return "deny"
	case DecisionFallback:
		return "fallback"
	}
	return "unknown"
}

// Decide is the authorization gate. It is a pure function of the session
// user and the requirement: no lookups happen here, and callers must fetch
// protected data only after an allow decision. A nil user always redirects
// to login; an authenticated user with an insufficient role is denied, never
// shown partial content.
func Decide(user *SessionUser, req Requirement) Decision {
	if user == nil {
		return DecisionRedirectLogin
	}

	switch req {
	case RequireAdminRole:
		if user.Role != profile.RoleAdmin {
			return DecisionDeny
		}
		return DecisionAllow
	case RequireDashboardRole:
		if !user.Role.HasDashboard() {
			return DecisionFallback
		}
		return DecisionAllow
	case RequireAuthenticated:
		return DecisionAllow
	}

	// Unknown requirements fail closed.
	return DecisionDeny
}
