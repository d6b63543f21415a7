package events

import (
	"context"
	"log/slog"
)

// NoopPublisher logs events without sending them to a broker. Useful for
// local dev and for deployments that have no consumer for feedback events.
type NoopPublisher struct{}

// NewNoopPublisher returns a new no-op event publisher.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (n *NoopPublisher) PublishReviewCreated(_ context.Context, reviewID string, productID int) error {
	slog.Debug("event::review_created", "review_id", reviewID, "product_id", productID)
	return nil
}
