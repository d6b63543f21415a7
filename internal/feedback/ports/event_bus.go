package ports

import "context"

// EventBus defines the contract for publishing feedback lifecycle events.
type EventBus interface {
	PublishReviewCreated(ctx context.Context, reviewID string, productID int) error
}
