package server

import (
	"log/slog"
	"net/http"

	"scoutlink-server/internal/admin"
	adminHandlers "scoutlink-server/internal/admin/handlers"
	"scoutlink-server/internal/auth"
	authHandlers "scoutlink-server/internal/auth/handlers"
	"scoutlink-server/internal/auth/providers"
	"scoutlink-server/internal/dashboard"
	dashboardHandlers "scoutlink-server/internal/dashboard/handlers"
	"scoutlink-server/internal/event"
	eventHandlers "scoutlink-server/internal/event/handlers"
	"scoutlink-server/internal/middleware"
	"scoutlink-server/internal/news"
	newsHandlers "scoutlink-server/internal/news/handlers"
	"scoutlink-server/internal/opportunity"
	opportunityHandlers "scoutlink-server/internal/opportunity/handlers"
	"scoutlink-server/internal/player"
	playerHandlers "scoutlink-server/internal/player/handlers"
	"scoutlink-server/internal/pricing"
	pricingHandlers "scoutlink-server/internal/pricing/handlers"
	"scoutlink-server/internal/profile"
	profileHandlers "scoutlink-server/internal/profile/handlers"
	serverHandlers "scoutlink-server/internal/server/handlers"
	"scoutlink-server/internal/settings"
	settingsHandlers "scoutlink-server/internal/settings/handlers"
	"scoutlink-server/internal/shared/config"
	"scoutlink-server/internal/shared/database"
	"scoutlink-server/internal/shared/redis"
)

type Routes struct {
	db                 *database.DB
	cache              *redis.Client
	authService        *auth.Service
	profileService     *profile.Service
	playerService      *player.Service
	opportunityService *opportunity.Service
	eventService       *event.Service
	newsService        *news.Service
	pricingService     *pricing.Service
	adminService       *admin.Service
	dashboardService   *dashboard.Service
	settingsService    *settings.Service
}

func NewRoutes(
	db *database.DB,
	cache *redis.Client,
	authService *auth.Service,
	profileService *profile.Service,
	playerService *player.Service,
	opportunityService *opportunity.Service,
	eventService *event.Service,
	newsService *news.Service,
	pricingService *pricing.Service,
	adminService *admin.Service,
	dashboardService *dashboard.Service,
	settingsService *settings.Service,
) *Routes {
	return &Routes{
		db:                 db,
		cache:              cache,
		authService:        authService,
		profileService:     profileService,
		playerService:      playerService,
		opportunityService: opportunityService,
		eventService:       eventService,
		newsService:        newsService,
		pricingService:     pricingService,
		adminService:       adminService,
		dashboardService:   dashboardService,
		settingsService:    settingsService,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db, r.cache)
	registerHandler := authHandlers.NewRegisterHandler(r.authService)
	loginHandler := authHandlers.NewLoginHandler(r.authService)
	logoutHandler := authHandlers.NewLogoutHandler()
	meHandler := authHandlers.NewMeHandler()
	googleAuthHandler := authHandlers.NewGoogleAuthHandler(
		providers.NewGoogleProvider(),
		r.authService,
		config.GlobalConfig.GoogleOAuthConfigured(),
	)

	profilesHandler := profileHandlers.NewProfilesHandler(r.profileService)
	playersHandler := playerHandlers.NewPlayersHandler(r.playerService)
	opportunitiesHandler := opportunityHandlers.NewOpportunitiesHandler(r.opportunityService)
	eventsHandler := eventHandlers.NewEventsHandler(r.eventService)
	newsHandler := newsHandlers.NewNewsHandler(r.newsService)
	plansHandler := pricingHandlers.NewPlansHandler(r.pricingService)
	statsHandler := adminHandlers.NewStatsHandler(r.adminService)
	usersHandler := adminHandlers.NewUsersHandler(r.adminService)
	adminPlayersHandler := adminHandlers.NewPlayersHandler(r.adminService)
	dashboardHandler := dashboardHandlers.NewDashboardHandler(r.dashboardService)
	settingsHandler := settingsHandlers.NewSettingsHandler(r.settingsService)

	// Public endpoints
	mux.Handle("GET /api/server/health", healthHandler)
	mux.HandleFunc("GET /api/profiles", profilesHandler.List)
	mux.HandleFunc("GET /api/profiles/{id}", profilesHandler.Get)
	mux.HandleFunc("GET /api/players", playersHandler.List)
	mux.HandleFunc("GET /api/players/{id}", playersHandler.Get)
	mux.HandleFunc("GET /api/transfer-market", playersHandler.TransferMarket)
	mux.HandleFunc("GET /api/opportunities", opportunitiesHandler.List)
	mux.HandleFunc("GET /api/opportunities/{id}", opportunitiesHandler.Get)
	mux.HandleFunc("GET /api/events", eventsHandler.List)
	mux.HandleFunc("GET /api/news", newsHandler.List)
	mux.HandleFunc("GET /api/pricing", plansHandler.List)

	// Auth endpoints
	mux.Handle("POST /auth/register", registerHandler)
	mux.Handle("POST /auth/login", loginHandler)
	mux.Handle("/auth/logout", logoutHandler)
	mux.HandleFunc("/auth/google", googleAuthHandler.HandleAuth)
	mux.HandleFunc("/auth/google/callback", googleAuthHandler.HandleCallback)

	// Protected endpoints (authenticated users)
	mux.Handle("GET /api/me", middleware.RequireAuth(meHandler))
	mux.Handle("PUT /api/profiles/me", middleware.RequireAuth(http.HandlerFunc(profilesHandler.UpdateMe)))
	mux.Handle("PUT /api/players/me", middleware.RequireAuth(http.HandlerFunc(playersHandler.UpdateMe)))
	mux.Handle("GET /api/dashboard", middleware.RequireDashboard(http.HandlerFunc(dashboardHandler.Get)))
	mux.Handle("POST /api/opportunities", middleware.RequireAuth(http.HandlerFunc(opportunitiesHandler.Create)))
	mux.Handle("PUT /api/opportunities/{id}", middleware.RequireAuth(http.HandlerFunc(opportunitiesHandler.Update)))
	mux.Handle("DELETE /api/opportunities/{id}", middleware.RequireAuth(http.HandlerFunc(opportunitiesHandler.Delete)))

	// Admin-only endpoints
	mux.Handle("GET /api/admin/stats", middleware.RequireAdmin(http.HandlerFunc(statsHandler.Get)))
	mux.Handle("GET /api/admin/users", middleware.RequireAdmin(http.HandlerFunc(usersHandler.List)))
	mux.Handle("PUT /api/admin/users/{id}/role", middleware.RequireAdmin(http.HandlerFunc(usersHandler.UpdateRole)))
	mux.Handle("PUT /api/admin/users/{id}/verify", middleware.RequireAdmin(http.HandlerFunc(usersHandler.UpdateVerified)))
	mux.Handle("PUT /api/admin/players/{id}", middleware.RequireAdmin(http.HandlerFunc(adminPlayersHandler.UpdateAttributes)))
	mux.Handle("GET /api/admin/settings", middleware.RequireAdmin(http.HandlerFunc(settingsHandler.List)))
	mux.Handle("PUT /api/admin/settings", middleware.RequireAdmin(http.HandlerFunc(settingsHandler.Update)))
	mux.Handle("POST /api/events", middleware.RequireAdmin(http.HandlerFunc(eventsHandler.Create)))
	mux.Handle("DELETE /api/events/{id}", middleware.RequireAdmin(http.HandlerFunc(eventsHandler.Delete)))
	mux.Handle("POST /api/news", middleware.RequireAdmin(http.HandlerFunc(newsHandler.Create)))
	mux.Handle("DELETE /api/news/{id}", middleware.RequireAdmin(http.HandlerFunc(newsHandler.Delete)))
	mux.Handle("PUT /api/pricing", middleware.RequireAdmin(http.HandlerFunc(plansHandler.Upsert)))
	mux.Handle("DELETE /api/pricing/{id}", middleware.RequireAdmin(http.HandlerFunc(plansHandler.Delete)))

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{
			"/api/server/health", "/api/profiles", "/api/players",
			"/api/transfer-market", "/api/opportunities", "/api/events",
			"/api/news", "/api/pricing",
		},
		"protected_endpoints", []string{"/api/me", "/api/profiles/me", "/api/players/me", "/api/dashboard"},
		"admin_endpoints", []string{"/api/admin/stats", "/api/admin/users", "/api/admin/settings"},
		"auth_endpoints", []string{"/auth/register", "/auth/login", "/auth/google", "/auth/logout"},
	)

	return mux
}
