// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/incial/stockflow/internal/api"
	"github.com/incial/stockflow/internal/auth"
	"github.com/incial/stockflow/internal/cache"
	"github.com/incial/stockflow/internal/config"
	"github.com/incial/stockflow/internal/domain"
	"github.com/incial/stockflow/internal/repository/memory"
	"github.com/incial/stockflow/internal/service"
	"github.com/incial/stockflow/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	if cfg.Server.Mode == "debug" {
		logger.SetLevel("debug")
		gin.SetMode(gin.DebugMode)
	} else {
		logger.SetLevel("info")
		gin.SetMode(gin.ReleaseMode)
	}

	// Reference data and the in-memory entry history, seeded with the
	// demo catalog and initial entries.
	catalog := memory.NewSeedCatalogRepository()
	entries := memory.NewEntryRepository(domain.SeedStockEntries())

	// Report cache (redis when enabled, noop otherwise).
	reportCache, err := cache.NewReportCache(cfg.Cache)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize report cache")
	}

	// Session store for the signed-in identity.
	sessions, err := auth.NewSessionStore(cfg.Session)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize session store")
	}

	// Initialize services
	authService := auth.NewService(catalog, sessions, cfg.Auth)
	entryService := service.NewEntryService(entries, catalog, reportCache)
	reportService := service.NewReportService(entries, catalog, reportCache)

	// Initialize HTTP server
	router := api.NewRouter(&api.Services{
		Auth:    authService,
		Catalog: catalog,
		Entries: entryService,
		Reports: reportService,
	}, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
