package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scoutlink-server/internal/admin"
	"scoutlink-server/internal/auth"
	"scoutlink-server/internal/dashboard"
	"scoutlink-server/internal/event"
	"scoutlink-server/internal/middleware"
	"scoutlink-server/internal/news"
	"scoutlink-server/internal/opportunity"
	"scoutlink-server/internal/player"
	"scoutlink-server/internal/pricing"
	"scoutlink-server/internal/profile"
	"scoutlink-server/internal/server"
	"scoutlink-server/internal/settings"
	"scoutlink-server/internal/shared/config"
	"scoutlink-server/internal/shared/database"
	"scoutlink-server/internal/shared/logger"
	"scoutlink-server/internal/shared/redis"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	logger.Init()
	cfg := config.GlobalConfig
	slog.Info("Starting server", "environment", cfg.Server.Environment)

	db, err := database.Connect()
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	cache, err := redis.Connect()
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	// Repositories
	profileRepo := profile.NewRepository(db.DB)
	credentialRepo := auth.NewRepository(db.DB)
	playerRepo := player.NewRepository(db.DB)
	opportunityRepo := opportunity.NewRepository(db.DB)
	eventRepo := event.NewRepository(db.DB)
	newsRepo := news.NewRepository(db.DB)
	pricingRepo := pricing.NewRepository(db.DB)
	settingsRepo := settings.NewRepository(db.DB)

	// Services
	settingsService := settings.NewService(settingsRepo)
	profileService := profile.NewService(profileRepo, slog.Default())
	playerService := player.NewService(playerRepo, cache)
	authService := auth.NewService(profileService, credentialRepo, settingsService, playerService, slog.Default())
	opportunityService := opportunity.NewService(opportunityRepo)
	eventService := event.NewService(eventRepo)
	newsService := news.NewService(newsRepo)
	pricingService := pricing.NewService(pricingRepo)
	adminService := admin.NewService(profileService, playerService, cache)
	dashboardService := dashboard.NewService(profileService, playerService, opportunityService, settingsService)

	routes := server.NewRoutes(
		db, cache,
		authService, profileService, playerService,
		opportunityService, eventService, newsService, pricingService,
		adminService, dashboardService, settingsService,
	)
	mux := routes.Setup()

	// Middleware chain, outermost first: rate limit, CORS, session,
	// maintenance gate, then the routes.
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	corsMiddleware := middleware.NewCORS()

	var handler http.Handler = mux
	handler = middleware.Maintenance(settingsService)(handler)
	handler = middleware.WithSession(handler)
	handler = corsMiddleware.Middleware(handler)
	handler = rateLimiter.Middleware(handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("Server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
