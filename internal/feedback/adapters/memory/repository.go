package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dejobratic/shopfront/internal/feedback/domain"
	"github.com/dejobratic/shopfront/internal/feedback/ports"
)

// ReviewRepository provides an in-memory review store useful for local
// development and tests. Reviews are kept in insertion order.
type ReviewRepository struct {
	mu      sync.RWMutex
	reviews []domain.Review
}

// NewReviewRepository constructs a new in-memory review repository.
func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// Save appends a review.
func (r *ReviewRepository) Save(_ context.Context, review domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, review)
	return nil
}

// FindAllByProductID returns the product's reviews in insertion order.
func (r *ReviewRepository) FindAllByProductID(_ context.Context, productID int) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Review, 0)
	for _, review := range r.reviews {
		if review.ProductID == productID {
			result = append(result, review)
		}
	}
	return result, nil
}

// FavouriteProductRepository provides an in-memory favourite marker store.
// Markers are keyed by (productId, userId) so the pair stays unique.
type FavouriteProductRepository struct {
	mu         sync.RWMutex
	favourites map[string]domain.FavouriteProduct
}

// NewFavouriteProductRepository constructs a new in-memory favourites
// repository.
func NewFavouriteProductRepository() *FavouriteProductRepository {
	return &FavouriteProductRepository{favourites: make(map[string]domain.FavouriteProduct)}
}

func favouriteKey(productID int, userID string) string {
	return fmt.Sprintf("%d:%s", productID, userID)
}

// Save stores a marker, rejecting duplicates for the same pair.
func (r *FavouriteProductRepository) Save(_ context.Context, favourite domain.FavouriteProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := favouriteKey(favourite.ProductID, favourite.UserID)
	if _, ok := r.favourites[key]; ok {
		return ports.ErrAlreadyFavourite
	}
	r.favourites[key] = favourite
	return nil
}

// FindByProductID fetches the marker for a pair.
func (r *FavouriteProductRepository) FindByProductID(_ context.Context, productID int, userID string) (*domain.FavouriteProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	favourite, ok := r.favourites[favouriteKey(productID, userID)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := favourite
	return &copy, nil
}

// FindAllByUserID returns all markers owned by the user.
func (r *FavouriteProductRepository) FindAllByUserID(_ context.Context, userID string) ([]domain.FavouriteProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.FavouriteProduct, 0)
	for _, favourite := range r.favourites {
		if favourite.UserID == userID {
			result = append(result, favourite)
		}
	}
	return result, nil
}

// DeleteByProductID removes the marker for a pair. Deleting a missing
// marker succeeds.
func (r *FavouriteProductRepository) DeleteByProductID(_ context.Context, productID int, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.favourites, favouriteKey(productID, userID))
	return nil
}
