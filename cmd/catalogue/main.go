package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/dejobratic/shopfront/internal/catalogue/adapters"
	httpadapter "github.com/dejobratic/shopfront/internal/catalogue/adapters/http"
	"github.com/dejobratic/shopfront/internal/catalogue/adapters/memory"
	"github.com/dejobratic/shopfront/internal/catalogue/adapters/postgres"
	catalogueapp "github.com/dejobratic/shopfront/internal/catalogue/app"
	"github.com/dejobratic/shopfront/internal/catalogue/ports"
	"github.com/dejobratic/shopfront/internal/config"
	"github.com/dejobratic/shopfront/internal/database"
	"github.com/dejobratic/shopfront/internal/server"
	"github.com/dejobratic/shopfront/internal/telemetry"
)

const meterName = "github.com/dejobratic/shopfront/internal/catalogue"

func main() {
	cfg, err := config.Load("catalogue-service")
	if err != nil {
		telemetry.NewLogger(telemetry.ParseLevel("info")).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := telemetry.NewLogger(telemetry.ParseLevel(cfg.Telemetry.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.OTelEndpoint != "" {
		tel, err := telemetry.Initialize(ctx, telemetry.Config{
			ServiceName:    cfg.Service.Name,
			ServiceVersion: cfg.Service.Version,
			Environment:    cfg.Service.Environment,
			OTLPEndpoint:   cfg.Telemetry.OTelEndpoint,
			EnableTracing:  cfg.Telemetry.EnableTracing,
			EnableMetrics:  cfg.Telemetry.EnableMetrics,
			SampleRate:     cfg.Telemetry.SampleRate,
		})
		if err != nil {
			logger.Error("failed to initialize telemetry", "error", err)
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tel.Shutdown(shutdownCtx); err != nil {
				logger.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	var repo ports.ProductRepository
	ready := func(context.Context) error { return nil }

	if cfg.Database.URL != "" {
		pool, err := database.NewPool(ctx, cfg.Database.URL)
		if err != nil {
			logger.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if cfg.Database.AutoMigrate {
			logger.Info("running database migrations", "path", cfg.Database.MigrationsPath)
			if err := database.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsPath); err != nil {
				logger.Error("failed to run migrations", "error", err)
				os.Exit(1)
			}
			logger.Info("migrations completed successfully")
		}

		repo = postgres.NewRepository(pool)
		ready = func(ctx context.Context) error { return database.CheckHealth(ctx, pool) }
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory repository")
		repo = memory.NewRepository()
	}

	dbMetrics, err := database.NewMetrics(otel.Meter(meterName))
	if err != nil {
		logger.Error("failed to create database metrics", "error", err)
		os.Exit(1)
	}
	repo = adapters.NewObservableRepository(repo, dbMetrics)

	service := catalogueapp.NewService(repo, logger)
	productsHandler := httpadapter.NewHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		server.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := ready(r.Context()); err != nil {
			server.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready", "error": err.Error()})
			return
		}
		server.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	productsHandler.Register(mux)

	if err := server.Run(ctx, logger, cfg.HTTP, mux); err != nil {
		logger.Error("http server error", "error", err)
		os.Exit(1)
	}
}
