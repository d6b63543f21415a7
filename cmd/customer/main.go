package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/dejobratic/shopfront/internal/config"
	httpadapter "github.com/dejobratic/shopfront/internal/customer/adapters/http"
	customerapp "github.com/dejobratic/shopfront/internal/customer/app"
	"github.com/dejobratic/shopfront/internal/customer/clients"
	"github.com/dejobratic/shopfront/internal/customer/metrics"
	"github.com/dejobratic/shopfront/internal/server"
	"github.com/dejobratic/shopfront/internal/telemetry"
)

const meterName = "github.com/dejobratic/shopfront/internal/customer"

func main() {
	cfg, err := config.Load("customer-app")
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

	m, err := metrics.NewMetrics(otel.Meter(meterName))
	if err != nil {
		logger.Error("failed to create metrics", "error", err)
		os.Exit(1)
	}

	httpClient := &http.Client{}
	timeout := cfg.Downstream.RequestTimeout

	catalogue := clients.NewObservableCatalogue(
		clients.NewCatalogue(httpClient, cfg.Downstream.CatalogueBaseURL, timeout), m)
	reviews := clients.NewObservableReviews(
		clients.NewReviews(httpClient, cfg.Downstream.FeedbackBaseURL, timeout), m)
	favourites := clients.NewObservableFavourites(
		clients.NewFavourites(httpClient, cfg.Downstream.FeedbackBaseURL, timeout), m)

	service := customerapp.NewService(catalogue, reviews, favourites, logger, m)
	customerHandler := httpadapter.NewHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		server.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		server.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	customerHandler.Register(mux)

	if err := server.Run(ctx, logger, cfg.HTTP, mux); err != nil {
		logger.Error("http server error", "error", err)
		os.Exit(1)
	}
}
