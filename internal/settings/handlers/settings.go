package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"scoutlink-server/internal/settings"
	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/response"
)

type SettingsHandler struct {
	service *settings.Service
}

func NewSettingsHandler(service *settings.Service) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// List serves every platform flag. Admin-gated route.
func (h *SettingsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "settings_list", "remote_addr", r.RemoteAddr)

	all, err := h.service.List(ctx)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, all)
}

// Update writes one flag. Admin-gated route.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "settings_update", "remote_addr", r.RemoteAddr)

	var body struct {
		Key   string `json:"key"`
		Value bool   `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, logger, errors.Validation("invalid request body"))
		return
	}

	if err := h.service.Set(ctx, body.Key, body.Value); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Info("Platform flag changed", "key", body.Key, "value", body.Value)
	response.Success(w, http.StatusOK, map[string]interface{}{
		"key":   body.Key,
		"value": body.Value,
	})
}
