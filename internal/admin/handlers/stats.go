package handlers

import (
	"log/slog"
	"net/http"

	"scoutlink-server/internal/admin"
	"scoutlink-server/internal/shared/response"
)

type StatsHandler struct {
	service *admin.Service
}

func NewStatsHandler(service *admin.Service) *StatsHandler {
	return &StatsHandler{service: service}
}

// Get serves the back-office summary. The route is admin-gated, so by the
// time we are here the caller is an admin.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "admin_stats", "remote_addr", r.RemoteAddr)

	stats, err := h.service.Stats(ctx)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, stats)
}
