package clients

import (
	"context"
	"errors"
	"time"

	"github.com/dejobratic/shopfront/internal/customer/domain"
	"github.com/dejobratic/shopfront/internal/customer/metrics"
	"github.com/dejobratic/shopfront/internal/customer/ports"
	"github.com/dejobratic/shopfront/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// The observable wrappers decorate each downstream client with a span and
// an outcome metric per call. Only unavailability is recorded as a span
// error; absence and remote validation failures are expected answers.

func outcomeOf(err error) string {
	var validationErr *ports.ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ports.ErrNotFound):
		return "not_found"
	case errors.As(err, &validationErr):
		return "validation_failed"
	default:
		return "unavailable"
	}
}

func observe(ctx context.Context, m *metrics.Metrics, spanName, operation string, attrs []attribute.KeyValue, call func(ctx context.Context) error) error {
	ctx, span := telemetry.StartSpan(ctx, spanName)
	defer span.End()
	telemetry.AddSpanAttributes(span, attrs...)

	start := time.Now()
	err := call(ctx)
	duration := time.Since(start).Seconds()

	outcome := outcomeOf(err)
	m.RecordDownstreamCall(ctx, operation, outcome, duration)
	telemetry.AddSpanAttributes(span, attribute.String("outcome", outcome))

	if outcome == "unavailable" {
		telemetry.RecordSpanError(span, err)
		return err
	}

	telemetry.SetSpanSuccess(span)
	return err
}

// ObservableCatalogue decorates a catalogue client.
type ObservableCatalogue struct {
	client  ports.CatalogueClient
	metrics *metrics.Metrics
}

func NewObservableCatalogue(client ports.CatalogueClient, m *metrics.Metrics) *ObservableCatalogue {
	return &ObservableCatalogue{client: client, metrics: m}
}

func (c *ObservableCatalogue) FindProduct(ctx context.Context, productID int) (*domain.Product, error) {
	var product *domain.Product
	err := observe(ctx, c.metrics, "CatalogueClient.FindProduct", "catalogue.find_product",
		[]attribute.KeyValue{attribute.Int("product.id", productID)},
		func(ctx context.Context) error {
			var callErr error
			product, callErr = c.client.FindProduct(ctx, productID)
			return callErr
		})
	return product, err
}

func (c *ObservableCatalogue) FindAllProducts(ctx context.Context, filter string) ([]domain.Product, error) {
	var products []domain.Product
	err := observe(ctx, c.metrics, "CatalogueClient.FindAllProducts", "catalogue.find_all_products",
		nil,
		func(ctx context.Context) error {
			var callErr error
			products, callErr = c.client.FindAllProducts(ctx, filter)
			return callErr
		})
	return products, err
}

// ObservableReviews decorates a reviews client.
type ObservableReviews struct {
	client  ports.ReviewsClient
	metrics *metrics.Metrics
}

func NewObservableReviews(client ports.ReviewsClient, m *metrics.Metrics) *ObservableReviews {
	return &ObservableReviews{client: client, metrics: m}
}

func (c *ObservableReviews) FindReviewsByProduct(ctx context.Context, productID int) ([]domain.Review, error) {
	var reviews []domain.Review
	err := observe(ctx, c.metrics, "ReviewsClient.FindReviewsByProduct", "reviews.find_by_product",
		[]attribute.KeyValue{attribute.Int("product.id", productID)},
		func(ctx context.Context) error {
			var callErr error
			reviews, callErr = c.client.FindReviewsByProduct(ctx, productID)
			return callErr
		})
	return reviews, err
}

func (c *ObservableReviews) CreateReview(ctx context.Context, productID int, payload domain.NewReviewPayload, subject string) (*domain.Review, error) {
	var review *domain.Review
	err := observe(ctx, c.metrics, "ReviewsClient.CreateReview", "reviews.create",
		[]attribute.KeyValue{attribute.Int("product.id", productID)},
		func(ctx context.Context) error {
			var callErr error
			review, callErr = c.client.CreateReview(ctx, productID, payload, subject)
			return callErr
		})
	return review, err
}

// ObservableFavourites decorates a favourites client.
type ObservableFavourites struct {
	client  ports.FavouritesClient
	metrics *metrics.Metrics
}

func NewObservableFavourites(client ports.FavouritesClient, m *metrics.Metrics) *ObservableFavourites {
	return &ObservableFavourites{client: client, metrics: m}
}

func (c *ObservableFavourites) FindFavourites(ctx context.Context, subject string) ([]domain.FavouriteProduct, error) {
	var favourites []domain.FavouriteProduct
	err := observe(ctx, c.metrics, "FavouritesClient.FindFavourites", "favourites.find_all",
		nil,
		func(ctx context.Context) error {
			var callErr error
			favourites, callErr = c.client.FindFavourites(ctx, subject)
			return callErr
		})
	return favourites, err
}

func (c *ObservableFavourites) FindFavouriteByProduct(ctx context.Context, productID int, subject string) (*domain.FavouriteProduct, error) {
	var favourite *domain.FavouriteProduct
	err := observe(ctx, c.metrics, "FavouritesClient.FindFavouriteByProduct", "favourites.find_by_product",
		[]attribute.KeyValue{attribute.Int("product.id", productID)},
		func(ctx context.Context) error {
			var callErr error
			favourite, callErr = c.client.FindFavouriteByProduct(ctx, productID, subject)
			return callErr
		})
	return favourite, err
}

func (c *ObservableFavourites) AddToFavourites(ctx context.Context, productID int, subject string) (*domain.FavouriteProduct, error) {
	var favourite *domain.FavouriteProduct
	err := observe(ctx, c.metrics, "FavouritesClient.AddToFavourites", "favourites.add",
		[]attribute.KeyValue{attribute.Int("product.id", productID)},
		func(ctx context.Context) error {
			var callErr error
			favourite, callErr = c.client.AddToFavourites(ctx, productID, subject)
			return callErr
		})
	return favourite, err
}

func (c *ObservableFavourites) RemoveFromFavourites(ctx context.Context, productID int, subject string) error {
	return observe(ctx, c.metrics, "FavouritesClient.RemoveFromFavourites", "favourites.remove",
		[]attribute.KeyValue{attribute.Int("product.id", productID)},
		func(ctx context.Context) error {
			return c.client.RemoveFromFavourites(ctx, productID, subject)
		})
}
