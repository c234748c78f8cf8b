package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"scoutlink-server/internal/auth"
	"scoutlink-server/internal/auth/providers"
	"scoutlink-server/internal/shared/config"
	"scoutlink-server/internal/shared/cookies"
	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/response"
)

type GoogleAuthHandler struct {
	provider     *providers.GoogleProvider
	authService  *auth.Service
	isConfigured bool
}

func NewGoogleAuthHandler(provider *providers.GoogleProvider, authService *auth.Service, isConfigured bool) *GoogleAuthHandler {
	return &GoogleAuthHandler{
		provider:     provider,
		authService:  authService,
		isConfigured: isConfigured,
	}
}

// HandleAuth initiates the Google OAuth flow.
func (h *GoogleAuthHandler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "google_oauth_init", "remote_addr", r.RemoteAddr)

	if !h.isConfigured {
		logger.Error("Google OAuth not configured - missing client credentials")
		response.Error(w, r, logger, errors.External("Google sign-in is not available"))
		return
	}

	state, err := auth.GenerateOAuthState("google", r.UserAgent())
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to initialize OAuth flow", err))
		return
	}

	url := h.provider.GetAuthURL(state)
	logger.Info("Initiating Google OAuth flow")

	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// HandleCallback processes the Google OAuth callback and establishes a
// session.
func (h *GoogleAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	errorParam := r.URL.Query().Get("error")

	logger := slog.With(
		"handler", "google_oauth_callback",
		"remote_addr", r.RemoteAddr,
		"has_code", code != "",
		"has_state", state != "",
	)

	if errorParam != "" {
		logger.Warn("Google OAuth authorization denied", "oauth_error", errorParam)
		redirectWithError(w, r, "oauth_denied", "Authorization was denied")
		return
	}

	if code == "" {
		logger.Error("Google OAuth callback missing authorization code")
		redirectWithError(w, r, "oauth_error", "Missing authorization code")
		return
	}

	if err := auth.ValidateOAuthState(state, "google", r.UserAgent()); err != nil {
		logger.Error("OAuth state validation failed", "error", err)
		redirectWithError(w, r, "oauth_error", "Invalid request state")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token, err := h.provider.ExchangeCode(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange Google authorization code", "error", err)
		redirectWithError(w, r, "oauth_error", "Failed to exchange authorization code")
		return
	}

	userInfo, err := h.provider.GetUserInfo(ctx, token)
	if err != nil {
		logger.Error("Failed to get user info from Google", "error", err)
		redirectWithError(w, r, "oauth_error", "Failed to retrieve user information")
		return
	}

	if userInfo.Email == "" {
		logger.Error("Google user info missing required email field")
		redirectWithError(w, r, "oauth_error", "Email address is required")
		return
	}

	p, err := h.authService.FindOrCreateByOAuth(ctx, "google", userInfo.ID, userInfo.Email, userInfo.Name)
	if err != nil {
		logger.Error("Failed to resolve account for Google user", "error", err, "email", userInfo.Email)
		redirectWithError(w, r, "database_error", "Failed to sign in")
		return
	}

	sessionToken, err := auth.GenerateJWT(p)
	if err != nil {
		logger.Error("Failed to generate session token", "error", err)
		redirectWithError(w, r, "internal_error", "Failed to establish session")
		return
	}

	cookies.SetAuthCookie(w, sessionToken)
	logger.Info("Google sign-in completed", "profile_id", p.ID, "role", p.Role)

	http.Redirect(w, r, config.GlobalConfig.Frontend.URL, http.StatusTemporaryRedirect)
}
