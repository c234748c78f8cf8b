package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"scoutlink-server/internal/auth"
	"scoutlink-server/internal/shared/cookies"
	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/response"
)

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type RegisterHandler struct {
	authService *auth.Service
}

func NewRegisterHandler(authService *auth.Service) *RegisterHandler {
	return &RegisterHandler{authService: authService}
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "register", "remote_addr", r.RemoteAddr)

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.Validation("invalid request body"))
		return
	}

	p, err := h.authService.SignUp(ctx, req.FullName, req.Email, req.Password, req.Role)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	token, err := auth.GenerateJWT(p)
	if err != nil {
		logger.Error("Failed to generate session token", "error", err)
		response.ErrorWithMessage(w, r, logger,
			errors.WrapInternal("failed to generate token", err), "registration succeeded but sign-in failed")
		return
	}

	cookies.SetAuthCookie(w, token)
	response.Success(w, http.StatusCreated, p)
}
