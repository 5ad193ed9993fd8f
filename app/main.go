package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codejedi-ai/portfolio-api/app/api"
	"github.com/codejedi-ai/portfolio-api/app/cache"
	"github.com/codejedi-ai/portfolio-api/app/cfg"
	"github.com/codejedi-ai/portfolio-api/app/content"
	"github.com/codejedi-ai/portfolio-api/app/database"
	"github.com/codejedi-ai/portfolio-api/app/fallback"
	"github.com/codejedi-ai/portfolio-api/app/notion"
	"github.com/codejedi-ai/portfolio-api/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Portfolio API server", "version", appCfg.Version)

	// Cache storage: sqlite when the filesystem allows it, silent in-memory
	// fallback when it does not.
	var cacheStore cache.Store
	var purger tasks.CachePurger
	db, err := database.NewConnection(appCfg.CacheDBPath)
	if err != nil {
		slog.Warn("Cache database unavailable, using in-memory cache", "path", appCfg.CacheDBPath, "error", err)
		cacheStore = cache.NewMemoryStore()
	} else {
		defer db.Close()

		version, dirty, err := database.RunMigrations(db)
		if err != nil {
			slog.Warn("Cache migrations failed, using in-memory cache", "error", err)
			cacheStore = cache.NewMemoryStore()
		} else {
			slog.Info("Cache database ready", "path", appCfg.CacheDBPath, "migration_version", version, "dirty", dirty)
			repo := database.NewCacheRepository(db)
			cacheStore = repo
			purger = repo
		}
	}

	responseCache := cache.New(cacheStore, appCfg.CacheDisabled)
	if appCfg.CacheDisabled {
		slog.Info("Response caching disabled")
	}

	// External content source client
	client := notion.NewClient(notion.Config{
		Token:     appCfg.NotionToken,
		BaseURL:   appCfg.NotionBaseURL,
		UserAgent: appCfg.UserAgent,
	})

	service := content.NewService(client, content.Databases{
		Work:           appCfg.WorkDatabaseID,
		Blog:           appCfg.BlogDatabaseID,
		Projects:       appCfg.ProjectsDatabaseID,
		Certificates:   appCfg.CertificatesDatabaseID,
		HFCertificates: appCfg.HFCertsDatabaseID,
		Images:         appCfg.ImagesDatabaseID,
		AboutImages:    appCfg.AboutImagesDatabaseID,
		Skills:         appCfg.SkillsDatabaseID,
		Contacts:       appCfg.ContactsDatabaseID,
	})

	fallbackStore, err := fallback.NewStore(appCfg.FallbackDir)
	if err != nil {
		slog.Error("Failed to load fallback data", "error", err)
		os.Exit(1)
	}

	// Background cache refresh
	scheduler := tasks.NewScheduler(responseCache, content.PayloadFetchers(service), purger)
	scheduler.Start()
	defer scheduler.Stop()
	slog.Info("Background scheduler started", "workers", appCfg.WorkerCount, "interval", appCfg.SchedulerInterval)

	// HTTP server
	handler := api.NewHandler(service, responseCache, fallbackStore, client)
	corsPolicy := api.NewCORSPolicy(appCfg.CORSAllowedOrigins, appCfg.CORSAllowAll)
	server := api.NewServer(handler, corsPolicy)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
