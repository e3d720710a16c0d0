package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/app/echo-server/router"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/business/simulation"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/internal/middleware"
	psqlRepo "github.com/rezierosimeone00-ux/snappx-trl3-run1/internal/repository/postgres"
	redisRepo "github.com/rezierosimeone00-ux/snappx-trl3-run1/internal/repository/redis"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/internal/rest"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/pkg/config"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/pkg/database"
	redisdb "github.com/rezierosimeone00-ux/snappx-trl3-run1/pkg/database/redis"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/pkg/logger"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting Snappx drop simulator", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Optional Redis-backed comparison cache
	var cache simulation.ComparisonCache
	if cfg.Redis.Enabled {
		client, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer func() { _ = redisdb.CloseRedisClient(client) }()
		cache = redisRepo.NewResultCache(client)
		logger.Info("Redis cache enabled")
	}

	metrics.Init()

	// Init repo
	runRepo := psqlRepo.NewRunRepository(db)

	// Init service
	simService := simulation.NewService(runRepo, cache)

	// Init handler
	simHandler := rest.NewSimulationHandler(simService, cfg.Simulation)
	runsHandler := rest.NewRunsHandler(simService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetSimulationRoutes(api, simHandler)
	router.SetRunRoutes(api, runsHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("HTTP server listening", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server stopped unexpectedly", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
}
