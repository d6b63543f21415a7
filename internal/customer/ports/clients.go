package ports

import (
	"context"

	"github.com/dejobratic/shopfront/internal/customer/domain"
)

// CatalogueClient reads product data from the catalogue service.
type CatalogueClient interface {
	FindProduct(ctx context.Context, productID int) (*domain.Product, error)
	FindAllProducts(ctx context.Context, filter string) ([]domain.Product, error)
}

// ReviewsClient reads and creates product reviews on the feedback service.
type ReviewsClient interface {
	FindReviewsByProduct(ctx context.Context, productID int) ([]domain.Review, error)
	CreateReview(ctx context.Context, productID int, payload domain.NewReviewPayload, subject string) (*domain.Review, error)
}

// FavouritesClient manages the caller's favourite markers on the feedback
// service. FindFavouriteByProduct returns ErrNotFound when no marker
// exists; callers must treat that as "not favourited", not as a failure.
type FavouritesClient interface {
	FindFavourites(ctx context.Context, subject string) ([]domain.FavouriteProduct, error)
	FindFavouriteByProduct(ctx context.Context, productID int, subject string) (*domain.FavouriteProduct, error)
	AddToFavourites(ctx context.Context, productID int, subject string) (*domain.FavouriteProduct, error)
	RemoveFromFavourites(ctx context.Context, productID int, subject string) error
}
