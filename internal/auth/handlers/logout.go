package handlers

import (
	"log/slog"
	"net/http"

	"scoutlink-server/internal/shared/cookies"
	"scoutlink-server/internal/shared/response"
)

type LogoutHandler struct{}

func NewLogoutHandler() *LogoutHandler {
	return &LogoutHandler{}
}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "logout", "remote_addr", r.RemoteAddr)

	cookies.ClearAuthCookie(w)
	logger.Debug("Session cookie cleared")

	response.Success(w, http.StatusOK, map[string]string{"status": "logged out"})
}
