package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"scoutlink-server/internal/admin"
	"scoutlink-server/internal/profile"
	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/response"

	"github.com/google/uuid"
)

type UsersHandler struct {
	service *admin.Service
}

func NewUsersHandler(service *admin.Service) *UsersHandler {
	return &UsersHandler{service: service}
}

// List serves every profile, private ones included. Admin-gated route.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "admin_users_list", "remote_addr", r.RemoteAddr)

	users, err := h.service.ListUsers(ctx)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if users == nil {
		users = []profile.Profile{}
	}

	response.Success(w, http.StatusOK, users)
}

// UpdateRole changes a user's role.
func (h *UsersHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "admin_update_role", "remote_addr", r.RemoteAddr)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.Validation("invalid user id"))
		return
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, logger, errors.Validation("invalid request body"))
		return
	}

	role := profile.ParseRole(body.Role)
	if role == profile.RoleNone {
		response.Error(w, r, logger, errors.Validationf("invalid role %q", body.Role))
		return
	}

	if err := h.service.UpdateUserRole(ctx, id, role); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Info("User role changed", "user_id", id, "role", role)
	response.Success(w, http.StatusOK, map[string]string{"role": role.String()})
}

// UpdateVerified toggles a user's verification badge.
func (h *UsersHandler) UpdateVerified(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "admin_update_verified", "remote_addr", r.RemoteAddr)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.Validation("invalid user id"))
		return
	}

	var body struct {
		Verified bool `json:"verified"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, logger, errors.Validation("invalid request body"))
		return
	}

	if err := h.service.SetUserVerified(ctx, id, body.Verified); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Info("User verification changed", "user_id", id, "verified", body.Verified)
	response.Success(w, http.StatusOK, map[string]bool{"verified": body.Verified})
}
