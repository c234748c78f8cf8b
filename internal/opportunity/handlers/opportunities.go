package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"scoutlink-server/internal/middleware"
	"scoutlink-server/internal/opportunity"
	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/response"

	"github.com/google/uuid"
)

type OpportunitiesHandler struct {
	service *opportunity.Service
}

func NewOpportunitiesHandler(service *opportunity.Service) *OpportunitiesHandler {
	return &OpportunitiesHandler{service: service}
}

// List serves the public opportunity board.
func (h *OpportunitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "opportunities_list", "remote_addr", r.RemoteAddr)

	opportunities, err := h.service.List(ctx)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if opportunities == nil {
		opportunities = []opportunity.Opportunity{}
	}

	response.Success(w, http.StatusOK, opportunities)
}

func (h *OpportunitiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "opportunities_get", "remote_addr", r.RemoteAddr)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.Validation("invalid opportunity id"))
		return
	}

	o, err := h.service.GetByID(ctx, id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, o)
}

func (h *OpportunitiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "opportunities_create", "remote_addr", r.RemoteAddr)

	user := middleware.GetUserFromContext(r)
	if user == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	var input opportunity.OpportunityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, r, logger, errors.Validation("invalid request body"))
		return
	}

	o, err := h.service.Create(ctx, user, input)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Info("Opportunity posted", "opportunity_id", o.ID, "created_by", user.ProfileID)
	response.Success(w, http.StatusCreated, o)
}

func (h *OpportunitiesHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "opportunities_update", "remote_addr", r.RemoteAddr)

	user := middleware.GetUserFromContext(r)
	if user == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.Validation("invalid opportunity id"))
		return
	}

	var input opportunity.OpportunityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, r, logger, errors.Validation("invalid request body"))
		return
	}

	o, err := h.service.Update(ctx, user, id, input)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, o)
}

func (h *OpportunitiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "opportunities_delete", "remote_addr", r.RemoteAddr)

	user := middleware.GetUserFromContext(r)
	if user == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.Validation("invalid opportunity id"))
		return
	}

	if err := h.service.Delete(ctx, user, id); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusNoContent, nil)
}
