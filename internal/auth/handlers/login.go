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

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginHandler struct {
	authService *auth.Service
}

func NewLoginHandler(authService *auth.Service) *LoginHandler {
	return &LoginHandler{authService: authService}
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "login", "remote_addr", r.RemoteAddr)

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.Validation("invalid request body"))
		return
	}

	p, err := h.authService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	token, err := auth.GenerateJWT(p)
	if err != nil {
		logger.Error("Failed to generate session token", "error", err)
		response.Error(w, r, logger, errors.WrapInternal("failed to generate token", err))
		return
	}

	cookies.SetAuthCookie(w, token)
	response.Success(w, http.StatusOK, p)
}
