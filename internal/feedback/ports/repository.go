package ports

import (
	"context"
	"errors"

	"github.com/dejobratic/shopfront/internal/feedback/domain"
)

// ReviewRepository exposes persistence operations for product reviews.
type ReviewRepository interface {
	Save(ctx context.Context, review domain.Review) error
	FindAllByProductID(ctx context.Context, productID int) ([]domain.Review, error)
}

// FavouriteProductRepository exposes persistence operations for favourite
// markers. DeleteByProductID of a missing marker is a no-op.
type FavouriteProductRepository interface {
	Save(ctx context.Context, favourite domain.FavouriteProduct) error
	FindByProductID(ctx context.Context, productID int, userID string) (*domain.FavouriteProduct, error)
	FindAllByUserID(ctx context.Context, userID string) ([]domain.FavouriteProduct, error)
	DeleteByProductID(ctx context.Context, productID int, userID string) error
}

var (
	// ErrNotFound is returned when no favourite marker exists for the pair.
	ErrNotFound = errors.New("favourite product not found")

	// ErrAlreadyFavourite is returned when a marker for the
	// (productId, userId) pair already exists.
	ErrAlreadyFavourite = errors.New("product is already in favourites")
)
