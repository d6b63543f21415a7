package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics instruments the customer app. Downstream unavailability is the
// only failure class worth alerting on: not-found is an answer and
// validation failures belong to the user, so both are recorded as plain
// outcomes, not errors.
type Metrics struct {
	pageViewsTotal         metric.Int64Counter
	downstreamCallsTotal   metric.Int64Counter
	downstreamCallDuration metric.Float64Histogram
	swallowedTotal         metric.Int64Counter
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.pageViewsTotal, err = meter.Int64Counter(
		"customer_page_views_total",
		metric.WithDescription("Product page interactions by terminal outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create customer_page_views_total counter: %w", err)
	}

	m.downstreamCallsTotal, err = meter.Int64Counter(
		"downstream_calls_total",
		metric.WithDescription("Downstream service calls by operation and outcome"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create downstream_calls_total counter: %w", err)
	}

	m.downstreamCallDuration, err = meter.Float64Histogram(
		"downstream_call_duration_seconds",
		metric.WithDescription("Duration of downstream service calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create downstream_call_duration histogram: %w", err)
	}

	m.swallowedTotal, err = meter.Int64Counter(
		"favourite_failures_swallowed_total",
		metric.WithDescription("Favourite mutations that failed but still redirected"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create favourite_failures_swallowed_total counter: %w", err)
	}

	return m, nil
}

func (m *Metrics) RecordPageView(ctx context.Context, outcome string) {
	m.pageViewsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *Metrics) RecordDownstreamCall(ctx context.Context, operation, outcome string, durationSeconds float64) {
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)
	m.downstreamCallsTotal.Add(ctx, 1, attrs)
	m.downstreamCallDuration.Record(ctx, durationSeconds, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

func (m *Metrics) RecordSwallowedFailure(ctx context.Context, operation string) {
	m.swallowedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}
