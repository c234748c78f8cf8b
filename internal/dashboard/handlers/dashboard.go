package handlers

import (
	"log/slog"
	"net/http"

	"scoutlink-server/internal/dashboard"
	"scoutlink-server/internal/middleware"
	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/response"
)

type DashboardHandler struct {
	service *dashboard.Service
}

func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get serves the role-shaped dashboard. Accounts without a chosen role get
// the completion prompt payload rather than an error.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "dashboard", "remote_addr", r.RemoteAddr)

	user := middleware.GetUserFromContext(r)
	if user == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	view, err := h.service.View(ctx, user)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, view)
}
