package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gastai/internal/config"
	"gastai/internal/database"
	"gastai/internal/handlers"
	"gastai/internal/middleware"
	"gastai/internal/repositories"
	"gastai/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	gormDB, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(gormDB)
	categoryRepo := repositories.NewCategoryRepository(gormDB)
	transactionRepo := repositories.NewTransactionRepository(gormDB)
	blacklistedTokenRepo := repositories.NewBlacklistedTokenRepository(gormDB)

	// Services
	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost, cfg.Security.PasswordMinLength)
	authService := services.NewAuthService(userRepo, blacklistedTokenRepo, passwordService, tokenService, metrics, logger)
	transactionService := services.NewTransactionService(transactionRepo, categoryRepo, metrics, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	statsService := services.NewStatsService(transactionRepo, logger)
	profileService := services.NewProfileService(userRepo, transactionRepo, passwordService, logger)
	generator := services.NewOpenAIGenerator(&cfg.AI)
	recommendationService := services.NewRecommendationService(transactionRepo, generator, cfg.AI.Timeout, metrics, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, tokenService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	statsHandler := handlers.NewStatsHandler(statsService)
	profileHandler := handlers.NewProfileHandler(profileService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	healthHandler := handlers.NewHealthCheckHandler(gormDB)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.HTTPMetrics(metrics))
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/:id", categoryHandler.Get)
	api.GET("/health", healthHandler.HealthCheck)

	// Authenticated routes
	authed := api.Group("", middleware.RequireAuth(tokenService, blacklistedTokenRepo))
	authed.GET("/me", authHandler.Me)
	authed.POST("/logout", authHandler.Logout)

	authed.GET("/transactions", transactionHandler.List)
	authed.POST("/transactions", transactionHandler.Create)
	authed.GET("/transactions/:id", transactionHandler.Get)
	authed.PUT("/transactions/:id", transactionHandler.Update)
	authed.DELETE("/transactions/:id", transactionHandler.Delete)

	authed.POST("/categories", categoryHandler.Create)
	authed.PUT("/categories/:id", categoryHandler.Update)
	authed.DELETE("/categories/:id", categoryHandler.Delete)

	authed.GET("/dashboard/stats", statsHandler.DashboardStats)
	authed.GET("/stats", statsHandler.Statistics)

	authed.GET("/profile", profileHandler.Get)
	authed.PUT("/profile", profileHandler.Update)

	authed.GET("/recommendations", recommendationHandler.List)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("starting server", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
