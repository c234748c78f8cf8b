package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"scoutlink-server/internal/auth"
	"scoutlink-server/internal/shared/cookies"
)

type contextKey string

const UserContextKey contextKey = "user"

// WithSession resolves the auth cookie into a session user on the request
// context. Missing or invalid tokens leave the request unauthenticated
// rather than rejecting it; the role gate decides per route.
func WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With("middleware", "session", "method", r.Method, "path", r.URL.Path)

		cookie, err := r.Cookie(cookies.AuthCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := auth.ValidateJWT(cookie.Value)
		if err != nil {
			// Fail closed: a bad token is the same as no token.
			logger.Debug("Invalid session token", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		user, err := claims.SessionUser()
		if err != nil {
			logger.Warn("Session token carried malformed identity", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext returns the session user, or nil when unauthenticated.
func GetUserFromContext(r *http.Request) *auth.SessionUser {
	if user, ok := r.Context().Value(UserContextKey).(*auth.SessionUser); ok {
		return user
	}
	return nil
}
