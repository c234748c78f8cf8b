package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"scoutlink-server/internal/profile"
	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/response"
)

// FlagReader reads system flags; implemented by the settings service.
type FlagReader interface {
	Bool(ctx context.Context, key string, fallback bool) (bool, error)
}

// Maintenance returns 503 for non-admin API traffic while the
// maintenance_mode flag is set. Auth endpoints stay open so admins can sign
// in to turn it off.
func Maintenance(flags FlagReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := slog.With("middleware", "maintenance", "path", r.URL.Path)

			if strings.HasPrefix(r.URL.Path, "/auth/") {
				next.ServeHTTP(w, r)
				return
			}

			enabled, err := flags.Bool(r.Context(), "maintenance_mode", false)
			if err != nil {
				// Flag store being down should not take the site down
				// with it.
				logger.Error("Failed to read maintenance flag", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if !enabled {
				next.ServeHTTP(w, r)
				return
			}

			user := GetUserFromContext(r)
			if user != nil && user.Role == profile.RoleAdmin {
				next.ServeHTTP(w, r)
				return
			}

			response.Error(w, r, logger, errors.External("the site is down for maintenance"))
		})
	}
}
