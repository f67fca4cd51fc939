package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/dab97/stats-rgsu/internal/core/config"
	"github.com/dab97/stats-rgsu/internal/core/storage"
	"github.com/dab97/stats-rgsu/internal/core/storage/postgres"
	"github.com/dab97/stats-rgsu/internal/fallback"
	"github.com/dab97/stats-rgsu/internal/migrations"
	"github.com/dab97/stats-rgsu/internal/notion"
	"github.com/dab97/stats-rgsu/internal/server"
	"github.com/dab97/stats-rgsu/internal/stats"
	"github.com/dab97/stats-rgsu/internal/views"
	"github.com/dab97/stats-rgsu/internal/warmup"
	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "stats-rgsu.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration (.env first so NOTION_* can live there)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to read .env file", "error", err)
	}
	if _, err := os.Stat(*configPath); errors.Is(err, fs.ErrNotExist) {
		slog.Info("Config file not found, using defaults and environment", "path", *configPath)
		*configPath = ""
	}

	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"source", cfg.Source.Type,
		"notion_configured", cfg.Notion.Token != "" && cfg.Notion.DatabaseID != "",
		"plan", cfg.Plan.Path,
		"warmup", cfg.Warmup.Enabled,
	)

	// 2. Initialize Application Source
	checkers := map[string]server.HealthChecker{}
	var source storage.ApplicationSource
	switch cfg.Source.Type {
	case corecfg.SourcePostgres:
		dbAdapter, err := postgres.NewAdapter(cfg.Database.DSN, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
		if err != nil {
			slog.Error("Failed to initialize database", "error", err)
			os.Exit(1)
		}
		defer dbAdapter.Close()

		if dbAdapter.DB() != nil {
			// A failed migration degrades to fallback data instead of refusing to start.
			if err := migrations.RunMigrations(dbAdapter.DB(), cfg.Database.AutoMigrate); err != nil {
				slog.Error("Failed to run database migrations", "error", err)
			}
			checkers["database"] = dbAdapter
		}
		source = dbAdapter
	default:
		client := notion.NewClient(nil, notion.Config{
			Token:      cfg.Notion.Token,
			DatabaseID: cfg.Notion.DatabaseID,
			BaseURL:    cfg.Notion.BaseURL,
			Version:    cfg.Notion.Version,
			PageSize:   cfg.Notion.PageSize,
			MaxPages:   cfg.Notion.MaxPages,
			Timeout:    cfg.Notion.Timeout,
		})
		if !client.Configured() {
			slog.Warn("Notion credentials missing, serving fallback data", "reason", "not_configured")
		}
		source = notion.NewSource(client)
	}

	// 3. Initialize Stats Cache and Views
	statsSvc := stats.NewService(source, fallback.New())

	plan, err := views.LoadPlan(cfg.Plan.Path)
	if err != nil {
		slog.Error("Failed to load admission plan", "path", cfg.Plan.Path, "error", err)
		os.Exit(1)
	}
	slog.Info("Admission plan loaded", "entries", len(plan.Entries), "fingerprint", plan.Fingerprint)
	viewsHandler := views.NewHandler(statsSvc, views.NewBuilder(plan, cfg.Views.StreamOrder))

	// 4. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), cfg.Server.Mode, cfg.Server.Origins(), checkers)
	statsSvc.RegisterRoutes(srv.Engine)
	viewsHandler.RegisterRoutes(srv.Engine)

	// 5. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Warmup.Enabled {
		warmer, err := warmup.NewScheduler(cfg.Warmup.Schedule, statsSvc)
		if err != nil {
			slog.Error("Invalid warmup schedule", "error", err)
			os.Exit(1)
		}
		go func() {
			if err := warmer.Start(ctx); err != nil {
				slog.Error("Warmup stopped with error", "error", err)
			}
		}()
	} else {
		slog.Info("Cache warmup disabled by config")
	}

	// Signal handler → triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
