package telemetry

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

func TestStartSpan(t *testing.T) {
	t.Run("creates span with correct name", func(t *testing.T) {
		exp, cleanup := setupTracerProvider(t)
		defer cleanup()

		_, span := StartSpan(context.Background(), "ProductPage.View")
		span.End()

		spans := exp.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}
		if spans[0].Name != "ProductPage.View" {
			t.Errorf("expected span name ProductPage.View, got %s", spans[0].Name)
		}
	})

	t.Run("nested spans share a trace", func(t *testing.T) {
		exp, cleanup := setupTracerProvider(t)
		defer cleanup()

		ctx, parent := StartSpan(context.Background(), "parent")
		_, child := StartSpan(ctx, "child")
		child.End()
		parent.End()

		spans := exp.GetSpans()
		if len(spans) != 2 {
			t.Fatalf("expected 2 spans, got %d", len(spans))
		}
		if spans[0].SpanContext.TraceID() != spans[1].SpanContext.TraceID() {
			t.Error("expected nested spans to share a trace ID")
		}
	})
}

func TestAddSpanAttributes(t *testing.T) {
	t.Run("adds attributes to span", func(t *testing.T) {
		exp, cleanup := setupTracerProvider(t)
		defer cleanup()

		_, span := StartSpan(context.Background(), "test")
		AddSpanAttributes(span, attribute.Int("product.id", 42))
		span.End()

		spans := exp.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}

		found := false
		for _, attr := range spans[0].Attributes {
			if attr.Key == "product.id" && attr.Value.AsInt64() == 42 {
				found = true
			}
		}
		if !found {
			t.Error("expected product.id attribute on span")
		}
	})

	t.Run("handles nil span gracefully", func(t *testing.T) {
		AddSpanAttributes(nil, attribute.String("key", "value"))
	})
}

func TestRecordSpanError(t *testing.T) {
	t.Run("records error and sets error status", func(t *testing.T) {
		exp, cleanup := setupTracerProvider(t)
		defer cleanup()

		_, span := StartSpan(context.Background(), "test")
		RecordSpanError(span, errors.New("downstream unavailable"))
		span.End()

		spans := exp.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}
		if spans[0].Status.Code != codes.Error {
			t.Errorf("expected error status, got %v", spans[0].Status.Code)
		}
		if len(spans[0].Events) == 0 {
			t.Error("expected recorded error event")
		}
	})

	t.Run("handles nil span and nil error gracefully", func(t *testing.T) {
		_, cleanup := setupTracerProvider(t)
		defer cleanup()

		RecordSpanError(nil, errors.New("boom"))
		_, span := StartSpan(context.Background(), "test")
		RecordSpanError(span, nil)
		span.End()
	})
}

func TestSetSpanSuccess(t *testing.T) {
	exp, cleanup := setupTracerProvider(t)
	defer cleanup()

	_, span := StartSpan(context.Background(), "test")
	SetSpanSuccess(span)
	span.End()

	spans := exp.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Status.Code != codes.Ok {
		t.Errorf("expected OK status, got %v", spans[0].Status.Code)
	}
}

func TestTraceAndSpanIDs(t *testing.T) {
	t.Run("extracts IDs from context with span", func(t *testing.T) {
		_, cleanup := setupTracerProvider(t)
		defer cleanup()

		ctx, span := StartSpan(context.Background(), "test")
		defer span.End()

		if TraceID(ctx) == "" {
			t.Error("expected non-empty trace ID inside span")
		}
		if SpanID(ctx) == "" {
			t.Error("expected non-empty span ID inside span")
		}
	})

	t.Run("returns empty strings outside a span", func(t *testing.T) {
		ctx := context.Background()
		if TraceID(ctx) != "" {
			t.Errorf("expected empty trace ID, got %s", TraceID(ctx))
		}
		if SpanID(ctx) != "" {
			t.Errorf("expected empty span ID, got %s", SpanID(ctx))
		}
	})
}
