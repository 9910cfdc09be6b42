package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"logistic-api/config"
	configDocstore "logistic-api/config/docstore"
	"logistic-api/internal/httpserver"
	"logistic-api/pkg/log"
	"logistic-api/pkg/scope"
)

// @title       Logistic API
// @description User and lead CRUD service with a generic search/filter endpoint.
// @version     1.0
// @host        localhost:8080
// @schemes     http
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Document store (Postgres or memory, optionally cached in Redis)
	store, err := configDocstore.Connect(ctx, logger, cfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect document store: %v", err)
		os.Exit(1)
	}
	defer store.Close(context.Background())

	// JWT Manager
	jwtManager := scope.New(cfg.JWT.SecretKey, cfg.JWT.TTL)

	// Initialize HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,

		// Storage
		Store: store,

		// Authentication & Security Configuration
		JWTManager: jwtManager,
		JWTTTL:     cfg.JWT.TTL,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
	}
}
