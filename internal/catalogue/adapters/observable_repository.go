package adapters

import (
	"context"
	"time"

	"github.com/dejobratic/shopfront/internal/catalogue/domain"
	"github.com/dejobratic/shopfront/internal/catalogue/ports"
	"github.com/dejobratic/shopfront/internal/database"
	"github.com/dejobratic/shopfront/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// ObservableRepository decorates a ProductRepository with spans and query
// duration metrics.
type ObservableRepository struct {
	repo    ports.ProductRepository
	metrics *database.Metrics
}

func NewObservableRepository(repo ports.ProductRepository, metrics *database.Metrics) *ObservableRepository {
	return &ObservableRepository{
		repo:    repo,
		metrics: metrics,
	}
}

func (r *ObservableRepository) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	ctx, span := telemetry.StartSpan(ctx, "ProductRepository.Create")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.String("operation", "create"),
	)

	start := time.Now()
	created, err := r.repo.Create(ctx, product)
	duration := time.Since(start).Seconds()

	r.metrics.RecordQuery(ctx, "create_product", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return nil, err
	}

	telemetry.AddSpanAttributes(span, attribute.Int("product.id", created.ID))
	telemetry.SetSpanSuccess(span)
	return created, nil
}

func (r *ObservableRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	ctx, span := telemetry.StartSpan(ctx, "ProductRepository.GetByID")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.Int("product.id", id),
		attribute.String("operation", "get_by_id"),
	)

	start := time.Now()
	product, err := r.repo.GetByID(ctx, id)
	duration := time.Since(start).Seconds()

	r.metrics.RecordQuery(ctx, "get_product_by_id", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return nil, err
	}

	telemetry.SetSpanSuccess(span)
	return product, nil
}

func (r *ObservableRepository) List(ctx context.Context, filter string) ([]domain.Product, error) {
	ctx, span := telemetry.StartSpan(ctx, "ProductRepository.List")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.String("operation", "list"),
	)

	start := time.Now()
	products, err := r.repo.List(ctx, filter)
	duration := time.Since(start).Seconds()

	r.metrics.RecordQuery(ctx, "list_products", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return nil, err
	}

	telemetry.AddSpanAttributes(span, attribute.Int("product.count", len(products)))
	telemetry.SetSpanSuccess(span)
	return products, nil
}

func (r *ObservableRepository) Update(ctx context.Context, id int, title, details string) error {
	ctx, span := telemetry.StartSpan(ctx, "ProductRepository.Update")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.Int("product.id", id),
		attribute.String("operation", "update"),
	)

	start := time.Now()
	err := r.repo.Update(ctx, id, title, details)
	duration := time.Since(start).Seconds()

	r.metrics.RecordQuery(ctx, "update_product", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return err
	}

	telemetry.SetSpanSuccess(span)
	return nil
}

func (r *ObservableRepository) Delete(ctx context.Context, id int) error {
	ctx, span := telemetry.StartSpan(ctx, "ProductRepository.Delete")
	defer span.End()

	telemetry.AddSpanAttributes(span,
		attribute.Int("product.id", id),
		attribute.String("operation", "delete"),
	)

	start := time.Now()
	err := r.repo.Delete(ctx, id)
	duration := time.Since(start).Seconds()

	r.metrics.RecordQuery(ctx, "delete_product", duration)

	if err != nil {
		telemetry.RecordSpanError(span, err)
		return err
	}

	telemetry.SetSpanSuccess(span)
	return nil
}
