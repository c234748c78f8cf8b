package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"scoutlink-server/internal/admin"
	"scoutlink-server/internal/player"
	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/response"

	"github.com/google/uuid"
)

type PlayersHandler struct {
	service *admin.Service
}

func NewPlayersHandler(service *admin.Service) *PlayersHandler {
	return &PlayersHandler{service: service}
}

// UpdateAttributes creates or edits a player's attribute sheet on their
// behalf. Admin-gated route.
func (h *PlayersHandler) UpdateAttributes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "admin_update_player", "remote_addr", r.RemoteAddr)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.Validation("invalid player id"))
		return
	}

	var update player.AttributesUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		response.Error(w, r, logger, errors.Validation("invalid request body"))
		return
	}

	a, err := h.service.UpdatePlayerAttributes(ctx, id, update)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Info("Player attributes updated by admin", "profile_id", id)
	response.Success(w, http.StatusOK, a)
}
