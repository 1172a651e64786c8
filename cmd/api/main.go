package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wardrobe-catalog/config"
	_ "wardrobe-catalog/docs" // Swagger docs
	"wardrobe-catalog/internal/catalog/repository/backend"
	catalogUC "wardrobe-catalog/internal/catalog/usecase"
	"wardrobe-catalog/internal/httpserver"
	"wardrobe-catalog/internal/middleware"
	"wardrobe-catalog/pkg/log"
)

// @title       Wardrobe Catalog API
// @description Filter, sort and facet wardrobe items and marketplace listings.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Wardrobe Catalog...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Catalog backend: %s", cfg.Backend.URL)

	// 3. Catalog backend
	backendCfg := backend.Config{
		URL:           cfg.Backend.URL,
		Timeout:       cfg.Backend.Timeout,
		AccessToken:   cfg.Backend.AccessToken,
		Email:         cfg.Backend.Email,
		Password:      cfg.Backend.Password,
		TokenLifetime: cfg.Backend.TokenLifetime,
		CacheEnabled:  cfg.Cache.Enabled,
		CacheSize:     cfg.Cache.Size,
		CacheTTL:      cfg.Cache.TTL,
	}
	switch {
	case backendCfg.AccessToken != "":
		logger.Info(ctx, "Backend identity: static access token")
	case backendCfg.Email != "":
		logger.Infof(ctx, "Backend identity: %s", backendCfg.Email)
	default:
		logger.Warn(ctx, "No backend identity configured, anonymous marketplace reads go out unauthenticated")
	}
	catalogRepo := backend.New(backend.NewClient(context.Background(), backendCfg), backendCfg, logger)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			PerMin:           cfg.RateLimit.PerMin,
			MaxClients:       cfg.RateLimit.MaxClients,
			ClientTTL:        cfg.RateLimit.ClientTTL,
		},
		CatalogRepo: catalogRepo,
		CatalogQuery: catalogUC.Config{
			MaxRecords:   cfg.Query.MaxRecords,
			DefaultLimit: cfg.Query.DefaultLimit,
			MaxLimit:     cfg.Query.MaxLimit,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run until SIGINT/SIGTERM
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
