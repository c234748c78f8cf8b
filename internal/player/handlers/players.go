package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"scoutlink-server/internal/middleware"
	"scoutlink-server/internal/player"
	"scoutlink-server/internal/profile"
	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/response"

	"github.com/google/uuid"
)

type PlayersHandler struct {
	service *player.Service
}

func NewPlayersHandler(service *player.Service) *PlayersHandler {
	return &PlayersHandler{service: service}
}

// parseCriteria builds filter criteria from query parameters. Absent or
// unparsable numeric parameters leave the corresponding bound open.
func parseCriteria(values url.Values) player.Criteria {
	c := player.Criteria{
		Search:        values.Get("search"),
		Position:      values.Get("position"),
		Nationality:   values.Get("nationality"),
		PreferredFoot: values.Get("preferred_foot"),
	}

	c.AvailableForTransfer = values.Get("available_for_transfer") == "true"
	c.OpenToTrials = values.Get("open_to_trials") == "true"

	c.AgeRange = parseRange(values.Get("min_age"), values.Get("max_age"), 0, 100)
	c.ValueRange = parseRange(values.Get("min_value"), values.Get("max_value"), 0, 1<<62)

	return c
}

func parseRange(minStr, maxStr string, defaultMin, defaultMax int64) *player.Range {
	if minStr == "" && maxStr == "" {
		return nil
	}

	r := &player.Range{Min: defaultMin, Max: defaultMax}
	if v, err := strconv.ParseInt(minStr, 10, 64); err == nil {
		r.Min = v
	}
	if v, err := strconv.ParseInt(maxStr, 10, 64); err == nil {
		r.Max = v
	}
	return r
}

// List serves the player directory with optional filters.
func (h *PlayersHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "players_list", "remote_addr", r.RemoteAddr)

	players, err := h.service.List(ctx, parseCriteria(r.URL.Query()))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if players == nil {
		players = []player.Attributes{}
	}

	response.Success(w, http.StatusOK, players)
	logger.Debug("Player list served", "count", len(players))
}

// TransferMarket serves only players listed for transfer, regardless of the
// available_for_transfer query parameter.
func (h *PlayersHandler) TransferMarket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "transfer_market", "remote_addr", r.RemoteAddr)

	players, err := h.service.TransferMarket(ctx, parseCriteria(r.URL.Query()))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if players == nil {
		players = []player.Attributes{}
	}

	response.Success(w, http.StatusOK, players)
}

// Get serves a single player's attribute sheet.
func (h *PlayersHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "players_get", "remote_addr", r.RemoteAddr)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.Validation("invalid player id"))
		return
	}

	a, err := h.service.GetByID(ctx, id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, a)
}

// UpdateMe updates the authenticated player's own attributes.
func (h *PlayersHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "players_update_me", "remote_addr", r.RemoteAddr)

	user := middleware.GetUserFromContext(r)
	if user == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}
	if user.Role != profile.RolePlayer {
		response.Error(w, r, logger, errors.Forbidden("only players have attribute sheets"))
		return
	}

	var update player.AttributesUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		response.Error(w, r, logger, errors.Validation("invalid request body"))
		return
	}

	a, err := h.service.Update(ctx, user.ProfileID, update)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Info("Player attributes updated", "profile_id", user.ProfileID)
	response.Success(w, http.StatusOK, a)
}
