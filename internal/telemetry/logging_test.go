package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel"
)

func TestFilterLogsByLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     slog.Level
		logFunc   func(*slog.Logger, context.Context)
		shouldLog bool
	}{
		{
			name:  "debug level logs debug",
			level: slog.LevelDebug,
			logFunc: func(l *slog.Logger, ctx context.Context) {
				l.DebugContext(ctx, "debug message")
			},
			shouldLog: true,
		},
		{
			name:  "info level filters debug",
			level: slog.LevelInfo,
			logFunc: func(l *slog.Logger, ctx context.Context) {
				l.DebugContext(ctx, "debug message")
			},
			shouldLog: false,
		},
		{
			name:  "warn level logs error",
			level: slog.LevelWarn,
			logFunc: func(l *slog.Logger, ctx context.Context) {
				l.ErrorContext(ctx, "error message")
			},
			shouldLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			baseHandler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
				Level: tt.level,
			})
			logger := slog.New(&traceHandler{baseHandler: baseHandler})

			tt.logFunc(logger, context.Background())

			if tt.shouldLog && buf.Len() == 0 {
				t.Error("expected log output but got none")
			}
			if !tt.shouldLog && buf.Len() > 0 {
				t.Errorf("expected no log output but got: %s", buf.String())
			}
		})
	}
}

func TestTraceAndSpanIDInclusion(t *testing.T) {
	exp, cleanup := setupTracerProvider(t)
	defer cleanup()
	_ = exp

	var buf bytes.Buffer
	baseHandler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(&traceHandler{baseHandler: baseHandler})

	ctx, span := otel.Tracer("test").Start(context.Background(), "test-span")
	defer span.End()

	logger.InfoContext(ctx, "message inside span")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	if record["trace_id"] != TraceID(ctx) {
		t.Errorf("expected trace_id %q, got %v", TraceID(ctx), record["trace_id"])
	}
	if record["span_id"] != SpanID(ctx) {
		t.Errorf("expected span_id %q, got %v", SpanID(ctx), record["span_id"])
	}
}

func TestLogWithoutTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	baseHandler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(&traceHandler{baseHandler: baseHandler})

	logger.InfoContext(context.Background(), "message outside span")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	if _, ok := record["trace_id"]; ok {
		t.Error("expected no trace_id outside a span")
	}
	if _, ok := record["span_id"]; ok {
		t.Error("expected no span_id outside a span")
	}
}

func TestLogWithAttributesAndGroups(t *testing.T) {
	var buf bytes.Buffer
	baseHandler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(&traceHandler{baseHandler: baseHandler})

	logger = logger.With("service", "customer-app").WithGroup("request")
	logger.InfoContext(context.Background(), "handled", "path", "/customer/products/1")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	if record["service"] != "customer-app" {
		t.Errorf("expected service attribute, got %v", record["service"])
	}

	group, ok := record["request"].(map[string]any)
	if !ok {
		t.Fatalf("expected request group, got %v", record["request"])
	}
	if group["path"] != "/customer/products/1" {
		t.Errorf("expected grouped path attribute, got %v", group["path"])
	}
}
