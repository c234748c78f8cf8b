package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"scoutlink-server/internal/pricing"
	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/response"

	"github.com/google/uuid"
)

type PlansHandler struct {
	service *pricing.Service
}

func NewPlansHandler(service *pricing.Service) *PlansHandler {
	return &PlansHandler{service: service}
}

// List serves the public pricing table, optionally filtered by role.
func (h *PlansHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "pricing_list", "remote_addr", r.RemoteAddr)

	plans, err := h.service.List(ctx, r.URL.Query().Get("role"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if plans == nil {
		plans = []pricing.Plan{}
	}

	response.Success(w, http.StatusOK, plans)
}

// Upsert creates or replaces a plan. The route is admin-gated.
func (h *PlansHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "pricing_upsert", "remote_addr", r.RemoteAddr)

	var input pricing.PlanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, r, logger, errors.Validation("invalid request body"))
		return
	}

	p, err := h.service.Upsert(ctx, input)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Info("Pricing plan saved", "plan_id", p.ID, "role", p.Role, "name", p.Name)
	response.Success(w, http.StatusOK, p)
}

func (h *PlansHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "pricing_delete", "remote_addr", r.RemoteAddr)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.Validation("invalid plan id"))
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusNoContent, nil)
}
