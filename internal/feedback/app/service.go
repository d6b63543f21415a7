package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dejobratic/shopfront/internal/feedback/domain"
	"github.com/dejobratic/shopfront/internal/feedback/ports"
)

// Service bundles use cases for product reviews and favourite markers.
type Service struct {
	reviews    ports.ReviewRepository
	favourites ports.FavouriteProductRepository
	events     ports.EventBus
	logger     *slog.Logger
}

// NewService wires required dependencies.
func NewService(
	reviews ports.ReviewRepository,
	favourites ports.FavouriteProductRepository,
	events ports.EventBus,
	logger *slog.Logger,
) *Service {
	return &Service{
		reviews:    reviews,
		favourites: favourites,
		events:     events,
		logger:     logger,
	}
}

// FindReviewsByProduct returns all reviews for a product, oldest first.
// A product without reviews yields an empty slice, not an error.
func (s *Service) FindReviewsByProduct(ctx context.Context, productID int) ([]domain.Review, error) {
	return s.reviews.FindAllByProductID(ctx, productID)
}

// CreateReview validates and stores a review authored by the given subject.
func (s *Service) CreateReview(ctx context.Context, productID, rating int, text, authorID string) (*domain.Review, error) {
	review, err := domain.NewReview(productID, rating, text, authorID)
	if err != nil {
		return nil, err
	}

	if err := s.reviews.Save(ctx, *review); err != nil {
		return nil, err
	}

	if err := s.events.PublishReviewCreated(ctx, review.ID.String(), review.ProductID); err != nil {
		s.logger.WarnContext(ctx, "review saved but event publish failed",
			"review_id", review.ID, "error", err)
	}

	return review, nil
}

// FindFavourites returns all favourite markers owned by the subject.
func (s *Service) FindFavourites(ctx context.Context, userID string) ([]domain.FavouriteProduct, error) {
	return s.favourites.FindAllByUserID(ctx, userID)
}

// FindFavouriteByProduct returns the subject's marker for a product, or
// ports.ErrNotFound when the product has not been favourited.
func (s *Service) FindFavouriteByProduct(ctx context.Context, productID int, userID string) (*domain.FavouriteProduct, error) {
	return s.favourites.FindByProductID(ctx, productID, userID)
}

// AddToFavourites creates a favourite marker for the subject. Favouriting
// an already-favourited product is rejected as a validation failure so the
// marker stays unique per (productId, userId) pair.
func (s *Service) AddToFavourites(ctx context.Context, productID int, userID string) (*domain.FavouriteProduct, error) {
	favourite, err := domain.NewFavouriteProduct(productID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.favourites.Save(ctx, *favourite); err != nil {
		if errors.Is(err, ports.ErrAlreadyFavourite) {
			return nil, &domain.ValidationError{Messages: []string{"product is already in favourites"}}
		}
		return nil, err
	}

	return favourite, nil
}

// RemoveFromFavourites deletes the subject's marker for a product.
// Removing a product that is not favourited succeeds.
func (s *Service) RemoveFromFavourites(ctx context.Context, productID int, userID string) error {
	return s.favourites.DeleteByProductID(ctx, productID, userID)
}
