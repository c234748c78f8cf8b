package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"scoutlink-server/internal/event"
	"scoutlink-server/internal/middleware"
	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/response"

	"github.com/google/uuid"
)

type EventsHandler struct {
	service *event.Service
}

func NewEventsHandler(service *event.Service) *EventsHandler {
	return &EventsHandler{service: service}
}

// List serves the public event calendar.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "events_list", "remote_addr", r.RemoteAddr)

	events, err := h.service.List(ctx)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if events == nil {
		events = []event.Event{}
	}

	response.Success(w, http.StatusOK, events)
}

// Create adds a calendar entry. The route is admin-gated.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "events_create", "remote_addr", r.RemoteAddr)

	user := middleware.GetUserFromContext(r)
	if user == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	var input event.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, r, logger, errors.Validation("invalid request body"))
		return
	}

	e, err := h.service.Create(ctx, user.ProfileID, input)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Info("Event created", "event_id", e.ID)
	response.Success(w, http.StatusCreated, e)
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "events_delete", "remote_addr", r.RemoteAddr)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.Validation("invalid event id"))
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusNoContent, nil)
}
