package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config captures runtime configuration shared by the shopfront services.
// Each binary reads the sections it needs; unused sections keep their
// defaults and are ignored.
type Config struct {
	HTTP       HTTPConfig
	Database   DatabaseConfig
	Downstream DownstreamConfig
	Telemetry  TelemetryConfig
	Service    ServiceConfig
}

type HTTPConfig struct {
	Port          int
	ShutdownGrace int
}

type DatabaseConfig struct {
	URL            string
	AutoMigrate    bool
	MigrationsPath string
}

// DownstreamConfig holds base URLs and the per-call timeout for the
// customer app's backend services.
type DownstreamConfig struct {
	CatalogueBaseURL string
	FeedbackBaseURL  string
	RequestTimeout   time.Duration
}

type TelemetryConfig struct {
	LogLevel      string
	OTelEndpoint  string
	EnableTracing bool
	EnableMetrics bool
	SampleRate    float64
}

type ServiceConfig struct {
	Name        string
	Version     string
	Environment string
}

const (
	defaultHTTPPort          = 8080
	defaultShutdownGrace     = 15
	defaultMigrationsPath    = "migrations"
	defaultAutoMigrate       = true
	defaultCatalogueBaseURL  = "http://localhost:8081"
	defaultFeedbackBaseURL   = "http://localhost:8082"
	defaultDownstreamTimeout = 3 * time.Second
	defaultServiceVersion    = "0.1.0"
	defaultEnvironment       = "development"
	defaultLogLevel          = "info"
	defaultOTelSampleRate    = 1.0
)

// Load reads configuration from environment variables, applying defaults
// when needed. serviceName becomes the default telemetry service name.
func Load(serviceName string) (*Config, error) {
	httpCfg, err := loadHTTPConfig()
	if err != nil {
		return nil, fmt.Errorf("loading HTTP config: %w", err)
	}

	downstreamCfg, err := loadDownstreamConfig()
	if err != nil {
		return nil, fmt.Errorf("loading downstream config: %w", err)
	}

	telCfg, err := loadTelemetryConfig()
	if err != nil {
		return nil, fmt.Errorf("loading telemetry config: %w", err)
	}

	return &Config{
		HTTP:       httpCfg,
		Database:   loadDatabaseConfig(),
		Downstream: downstreamCfg,
		Telemetry:  telCfg,
		Service:    loadServiceConfig(serviceName),
	}, nil
}

func loadHTTPConfig() (HTTPConfig, error) {
	port := defaultHTTPPort
	if value, ok := os.LookupEnv("HTTP_PORT"); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return HTTPConfig{}, fmt.Errorf("invalid HTTP_PORT: %w", err)
		}
		port = parsed
	}

	shutdownGrace := defaultShutdownGrace
	if value, ok := os.LookupEnv("SHUTDOWN_GRACE_SECONDS"); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return HTTPConfig{}, fmt.Errorf("invalid SHUTDOWN_GRACE_SECONDS: %w", err)
		}
		shutdownGrace = parsed
	}

	return HTTPConfig{
		Port:          port,
		ShutdownGrace: shutdownGrace,
	}, nil
}

func loadDatabaseConfig() DatabaseConfig {
	autoMigrate := defaultAutoMigrate
	if value, ok := os.LookupEnv("AUTO_MIGRATE"); ok {
		autoMigrate = value == "true"
	}

	return DatabaseConfig{
		URL:            os.Getenv("DATABASE_URL"),
		AutoMigrate:    autoMigrate,
		MigrationsPath: getEnvOrDefault("MIGRATIONS_PATH", defaultMigrationsPath),
	}
}

func loadDownstreamConfig() (DownstreamConfig, error) {
	timeout := defaultDownstreamTimeout
	if value, ok := os.LookupEnv("DOWNSTREAM_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return DownstreamConfig{}, fmt.Errorf("invalid DOWNSTREAM_TIMEOUT: %w", err)
		}
		timeout = parsed
	}

	return DownstreamConfig{
		CatalogueBaseURL: getEnvOrDefault("CATALOGUE_API_BASE_URL", defaultCatalogueBaseURL),
		FeedbackBaseURL:  getEnvOrDefault("FEEDBACK_API_BASE_URL", defaultFeedbackBaseURL),
		RequestTimeout:   timeout,
	}, nil
}

func loadTelemetryConfig() (TelemetryConfig, error) {
	sampleRate := defaultOTelSampleRate
	if value, ok := os.LookupEnv("OTEL_SAMPLE_RATE"); ok {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return TelemetryConfig{}, fmt.Errorf("invalid OTEL_SAMPLE_RATE: %w", err)
		}
		sampleRate = parsed
	}

	return TelemetryConfig{
		LogLevel:      getEnvOrDefault("LOG_LEVEL", defaultLogLevel),
		OTelEndpoint:  getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		EnableTracing: getBoolEnv("OTEL_ENABLE_TRACING", true),
		EnableMetrics: getBoolEnv("OTEL_ENABLE_METRICS", true),
		SampleRate:    sampleRate,
	}, nil
}

func loadServiceConfig(serviceName string) ServiceConfig {
	return ServiceConfig{
		Name:        getEnvOrDefault("SERVICE_NAME", serviceName),
		Version:     getEnvOrDefault("SERVICE_VERSION", defaultServiceVersion),
		Environment: getEnvOrDefault("ENVIRONMENT", defaultEnvironment),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		return value == "true"
	}
	return defaultValue
}
