package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mirela/brainplay/internal/accesscode"
	"github.com/mirela/brainplay/internal/api"
	"github.com/mirela/brainplay/internal/config"
	"github.com/mirela/brainplay/internal/db"
	"github.com/mirela/brainplay/internal/logger"
	"github.com/mirela/brainplay/internal/repository/sqlite"
	"github.com/mirela/brainplay/internal/services"
	"github.com/mirela/brainplay/internal/worksheet"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("BrainPlay Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("worksheet_service_url=%s", cfg.WorksheetServiceURL)
	log.Debug("worksheet_timeout_sec=%d", cfg.WorksheetTimeoutSec)
	log.Debug("access_code_attempts=%d", cfg.AccessCodeAttempts)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize repositories
	profileRepo := sqlite.NewProfileRepository(database.DB)
	progressRepo := sqlite.NewProgressRepository(database.DB)
	achievementRepo := sqlite.NewAchievementRepository(database.DB)
	dailyRepo := sqlite.NewDailyChallengeRepository(database.DB)
	preferenceRepo := sqlite.NewPreferenceRepository(database.DB)
	syncRepo := sqlite.NewSyncRepository(database.DB)

	// Initialize services
	issuer := accesscode.New(cfg.AccessCodeAttempts)
	profileService := services.NewProfileService(profileRepo, progressRepo, achievementRepo, dailyRepo, preferenceRepo, issuer)
	progressService := services.NewProgressService(profileRepo, progressRepo, achievementRepo, dailyRepo, preferenceRepo)
	syncService := services.NewSyncService(profileRepo, syncRepo)

	srv := &api.Server{
		ProfileService:  profileService,
		ProgressService: progressService,
		SyncService:     syncService,
		WorksheetClient: worksheet.New(cfg.WorksheetServiceURL, time.Duration(cfg.WorksheetTimeoutSec)*time.Second),
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("BrainPlay Server Stopped")
	log.Info("===========================================")
}
