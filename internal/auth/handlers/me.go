package handlers

import (
	"log/slog"
	"net/http"

	"scoutlink-server/internal/middleware"
	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/response"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// ServeHTTP echoes the session identity so the frontend can bootstrap its
// auth state from the cookie.
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "me", "remote_addr", r.RemoteAddr)

	user := middleware.GetUserFromContext(r)
	if user == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	response.Success(w, http.StatusOK, map[string]interface{}{
		"profile_id": user.ProfileID,
		"email":      user.Email,
		"role":       user.Role.String(),
	})
}
