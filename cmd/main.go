package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "traffic-router/internal/adapter/http"
	"traffic-router/internal/adapter/memory"
	"traffic-router/internal/adapter/postgres"
	"traffic-router/internal/adapter/usecase"
	"traffic-router/internal/config"
	"traffic-router/internal/core/port"
	"traffic-router/internal/core/routing"
	"traffic-router/internal/db"
)

// main is the entry point of the traffic router. It loads configuration,
// builds the campaign registry and selector, optionally connects the
// PostgreSQL store (running migrations and reloading stored campaigns), then
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.NewSlog().With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// The registry is the single shared campaign collection of the process.
	registry := memory.NewCampaignRegistry()

	var (
		store  port.CampaignStore
		visits port.VisitRecorder = memory.NewVisitRecorder()
	)
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()

		store = postgres.NewCampaignStore(pool)
		visits = postgres.NewVisitRepository(pool)
	}

	campaigns := usecase.NewCampaignUseCase(registry, store)
	loaded, err := campaigns.LoadCampaigns(ctx)
	if err != nil {
		logger.Error("load campaigns error", slog.Any("error", err))
		return
	}
	if cfg.SeedDemo {
		if err = db.Seed(ctx, campaigns); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
	}
	logger.Info("campaign registry ready",
		slog.Int("loaded", loaded),
		slog.Int("campaigns", registry.Len()),
		slog.Bool("persistent", store != nil),
	)

	selector := routing.NewSelector(registry, cfg.Router.Seed)
	traffic := usecase.NewTrafficUseCase(selector, visits, logger)

	handler := httpadapter.NewHandler(traffic, campaigns, logger, cfg.HTTP.CORSOrigins)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-srvErr:
		logger.Error("server error", slog.Any("error", err))
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
