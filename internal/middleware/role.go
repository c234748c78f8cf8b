package middleware

import (
	"log/slog"
	"net/http"

	"scoutlink-server/internal/auth"
	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/response"
)

// requireDecision evaluates the role gate before the handler runs. Data
// fetches live in the handlers, so nothing is loaded before an allow (or
// fallback) decision.
func requireDecision(req auth.Requirement, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With(
			"middleware", "role_gate",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)

		user := GetUserFromContext(r)

		switch auth.Decide(user, req) {
		case auth.DecisionAllow, auth.DecisionFallback:
			// Fallback still reaches the handler, which renders the
			// generic profile-completion view.
			next.ServeHTTP(w, r)
		case auth.DecisionRedirectLogin:
			response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		case auth.DecisionDeny:
			logger.Warn("Insufficient role for protected endpoint",
				"profile_id", user.ProfileID, "role", user.Role)
			response.Error(w, r, logger, errors.Forbidden("access denied"))
		default:
			response.Error(w, r, logger, errors.Forbidden("access denied"))
		}
	})
}

// RequireAuth admits any signed-in user.
func RequireAuth(next http.Handler) http.Handler {
	return requireDecision(auth.RequireAuthenticated, next)
}

// RequireAdmin admits only admin profiles.
func RequireAdmin(next http.Handler) http.Handler {
	return requireDecision(auth.RequireAdminRole, next)
}

// RequireDashboard admits signed-in users; profiles without a role fall
// through to the handler's generic completion view.
func RequireDashboard(next http.Handler) http.Handler {
	return requireDecision(auth.RequireDashboardRole, next)
}
