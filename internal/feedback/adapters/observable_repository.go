package adapters

import (
	"context"
	"time"

	"github.com/dejobratic/shopfront/internal/database"
	"github.com/dejobratic/shopfront/internal/feedback/domain"
	"github.com/dejobratic/shopfront/internal/feedback/ports"
	"github.com/dejobratic/shopfront/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// ObservableReviewRepository decorates a ReviewRepository with spans and
// query duration metrics.
type ObservableReviewRepository struct {
	repo    ports.ReviewRepository
	metrics *database.Metrics
}

func NewObservableReviewRepository(repo ports.ReviewRepository, metrics *database.Metrics) *ObservableReviewRepository {
	return &ObservableReviewRepository{
		repo:    repo,
		metrics: metrics,
	}
}

func (r *ObservableReviewRepository) Save(ctx context.Context, review domain.Review) error {
	ctx, span := telemetry.StartSpan(ctx, "ReviewRepository.Save")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.String("review.id", review.ID.String()),
		attribute.String("operation", "save"),
	)

	start := time.Now()
	err := r.repo.Save(ctx, review)
	duration := time.Since(start).Seconds()

	r.metrics.RecordQuery(ctx, "save_review", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return err
	}

	telemetry.SetSpanSuccess(span)
	return nil
}

func (r *ObservableReviewRepository) FindAllByProductID(ctx context.Context, productID int) ([]domain.Review, error) {
	ctx, span := telemetry.StartSpan(ctx, "ReviewRepository.FindAllByProductID")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.Int("product.id", productID),
		attribute.String("operation", "find_all_by_product_id"),
	)

	start := time.Now()
	reviews, err := r.repo.FindAllByProductID(ctx, productID)
	duration := time.Since(start).Seconds()

	r.metrics.RecordQuery(ctx, "find_reviews_by_product", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return nil, err
	}

	telemetry.AddSpanAttributes(span, attribute.Int("review.count", len(reviews)))
	telemetry.SetSpanSuccess(span)
	return reviews, nil
}

// ObservableFavouriteRepository decorates a FavouriteProductRepository
// with spans and query duration metrics.
type ObservableFavouriteRepository struct {
	repo    ports.FavouriteProductRepository
	metrics *database.Metrics
}

func NewObservableFavouriteRepository(repo ports.FavouriteProductRepository, metrics *database.Metrics) *ObservableFavouriteRepository {
	return &ObservableFavouriteRepository{
		repo:    repo,
		metrics: metrics,
	}
}

func (r *ObservableFavouriteRepository) Save(ctx context.Context, favourite domain.FavouriteProduct) error {
	ctx, span := telemetry.StartSpan(ctx, "FavouriteProductRepository.Save")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.Int("product.id", favourite.ProductID),
		attribute.String("operation", "save"),
	)

	start := time.Now()
	err := r.repo.Save(ctx, favourite)
	duration := time.Since(start).Seconds()

	r.metrics.RecordQuery(ctx, "save_favourite", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return err
	}

	telemetry.SetSpanSuccess(span)
	return nil
}

func (r *ObservableFavouriteRepository) FindByProductID(ctx context.Context, productID int, userID string) (*domain.FavouriteProduct, error) {
	ctx, span := telemetry.StartSpan(ctx, "FavouriteProductRepository.FindByProductID")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.Int("product.id", productID),
		attribute.String("operation", "find_by_product_id"),
	)

	start := time.Now()
	favourite, err := r.repo.FindByProductID(ctx, productID, userID)
	duration := time.Since(start).Seconds()

	r.metrics.RecordQuery(ctx, "find_favourite_by_product", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return nil, err
	}

	telemetry.SetSpanSuccess(span)
	return favourite, nil
}

func (r *ObservableFavouriteRepository) FindAllByUserID(ctx context.Context, userID string) ([]domain.FavouriteProduct, error) {
	ctx, span := telemetry.StartSpan(ctx, "FavouriteProductRepository.FindAllByUserID")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.String("operation", "find_all_by_user_id"),
	)

	start := time.Now()
	favourites, err := r.repo.FindAllByUserID(ctx, userID)
	duration := time.Since(start).Seconds()

	r.metrics.RecordQuery(ctx, "find_favourites_by_user", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return nil, err
	}

	telemetry.AddSpanAttributes(span, attribute.Int("favourite.count", len(favourites)))
	telemetry.SetSpanSuccess(span)
	return favourites, nil
}

func (r *ObservableFavouriteRepository) DeleteByProductID(ctx context.Context, productID int, userID string) error {
	ctx, span := telemetry.StartSpan(ctx, "FavouriteProductRepository.DeleteByProductID")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.Int("product.id", productID),
		attribute.String("operation", "delete_by_product_id"),
	)

	start := time.Now()
	err := r.repo.DeleteByProductID(ctx, productID, userID)
	duration := time.Since(start).Seconds()

	r.metrics.RecordQuery(ctx, "delete_favourite_by_product", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return err
	}

	telemetry.SetSpanSuccess(span)
	return nil
}
