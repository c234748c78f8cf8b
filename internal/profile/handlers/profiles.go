package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"scoutlink-server/internal/middleware"
	"scoutlink-server/internal/profile"
	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/response"

	"github.com/google/uuid"
)

type ProfilesHandler struct {
	service *profile.Service
}

func NewProfilesHandler(service *profile.Service) *ProfilesHandler {
	return &ProfilesHandler{service: service}
}

// List serves the public profile directory.
func (h *ProfilesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "profiles_list", "remote_addr", r.RemoteAddr)

	profiles, err := h.service.ListPublic(ctx)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if profiles == nil {
		profiles = []profile.Profile{}
	}

	response.Success(w, http.StatusOK, profiles)
	logger.Debug("Profile list served", "count", len(profiles))
}

// Get serves a single profile. Private profiles are visible only to their
// owner and to admins; everyone else gets not found rather than a hint that
// the profile exists.
func (h *ProfilesHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "profiles_get", "remote_addr", r.RemoteAddr)

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, r, logger, errors.Validation("invalid profile id"))
		return
	}

	p, err := h.service.GetByID(ctx, id)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if !p.IsPublic {
		user := middleware.GetUserFromContext(r)
		isOwner := user != nil && user.ProfileID == p.ID
		isAdmin := user != nil && user.Role == profile.RoleAdmin
		if !isOwner && !isAdmin {
			response.Error(w, r, logger, errors.NotFoundf("profile %s not found", id))
			return
		}
	}

	response.Success(w, http.StatusOK, p)
}

// UpdateMe updates the authenticated caller's own profile.
func (h *ProfilesHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "profiles_update_me", "remote_addr", r.RemoteAddr)

	user := middleware.GetUserFromContext(r)
	if user == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	var update profile.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		response.Error(w, r, logger, errors.Validation("invalid request body"))
		return
	}

	if update.FullName != nil && *update.FullName == "" {
		response.Error(w, r, logger, errors.Validation("full name cannot be empty"))
		return
	}

	p, err := h.service.Update(ctx, user.ProfileID, update)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Info("Profile updated", "profile_id", p.ID)
	response.Success(w, http.StatusOK, p)
}
