package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"scoutlink-server/internal/middleware"
	"scoutlink-server/internal/news"
	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/response"

	"github.com/google/uuid"
)

type NewsHandler struct {
	service *news.Service
}

func NewNewsHandler(service *news.Service) *NewsHandler {
	return &NewsHandler{service: service}
}

// List serves the public news feed, optionally filtered by category.
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "news_list", "remote_addr", r.RemoteAddr)

	items, err := h.service.List(ctx, r.URL.Query().Get("category"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if items == nil {
		items = []news.Item{}
	}

	response.Success(w, http.StatusOK, items)
}

// Create publishes a news item. The route is admin-gated.
func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "news_create", "remote_addr", r.RemoteAddr)

	user := middleware.GetUserFromContext(r)
	if user == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	var input news.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, r, logger, errors.Validation("invalid request body"))
		return
	}

	item, err := h.service.Create(ctx, user.ProfileID, input)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Info("News item published", "news_id", item.ID)
	response.Success(w, http.StatusCreated, item)
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "news_delete", "remote_addr", r.RemoteAddr)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.Validation("invalid news id"))
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusNoContent, nil)
}
