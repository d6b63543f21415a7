package app_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dejobratic/shopfront/internal/feedback/app"
	"github.com/dejobratic/shopfront/internal/feedback/domain"
	"github.com/dejobratic/shopfront/internal/feedback/ports"
)

type mockReviewRepository struct {
	saveFn             func(ctx context.Context, review domain.Review) error
	findAllByProductFn func(ctx context.Context, productID int) ([]domain.Review, error)
}

func (m *mockReviewRepository) Save(ctx context.Context, review domain.Review) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, review)
	}
	return nil
}

func (m *mockReviewRepository) FindAllByProductID(ctx context.Context, productID int) ([]domain.Review, error) {
	if m.findAllByProductFn != nil {
		return m.findAllByProductFn(ctx, productID)
	}
	return []domain.Review{}, nil
}

type mockFavouriteRepository struct {
	saveFn            func(ctx context.Context, favourite domain.FavouriteProduct) error
	findByProductFn   func(ctx context.Context, productID int, userID string) (*domain.FavouriteProduct, error)
	findAllByUserFn   func(ctx context.Context, userID string) ([]domain.FavouriteProduct, error)
	deleteByProductFn func(ctx context.Context, productID int, userID string) error
}

func (m *mockFavouriteRepository) Save(ctx context.Context, favourite domain.FavouriteProduct) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, favourite)
	}
	return nil
}

func (m *mockFavouriteRepository) FindByProductID(ctx context.Context, productID int, userID string) (*domain.FavouriteProduct, error) {
	if m.findByProductFn != nil {
		return m.findByProductFn(ctx, productID, userID)
	}
	return nil, ports.ErrNotFound
}

func (m *mockFavouriteRepository) FindAllByUserID(ctx context.Context, userID string) ([]domain.FavouriteProduct, error) {
	if m.findAllByUserFn != nil {
		return m.findAllByUserFn(ctx, userID)
	}
	return []domain.FavouriteProduct{}, nil
}

func (m *mockFavouriteRepository) DeleteByProductID(ctx context.Context, productID int, userID string) error {
	if m.deleteByProductFn != nil {
		return m.deleteByProductFn(ctx, productID, userID)
	}
	return nil
}

type mockEventBus struct {
	publishReviewCreatedFn func(ctx context.Context, reviewID string, productID int) error
}

func (m *mockEventBus) PublishReviewCreated(ctx context.Context, reviewID string, productID int) error {
	if m.publishReviewCreatedFn != nil {
		return m.publishReviewCreatedFn(ctx, reviewID, productID)
	}
	return nil
}

func newTestService(reviews *mockReviewRepository, favourites *mockFavouriteRepository, events *mockEventBus) *app.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return app.NewService(reviews, favourites, events, logger)
}

func TestCreateReview(t *testing.T) {
	t.Run("saves review and publishes event", func(t *testing.T) {
		var saved domain.Review
		var publishedID string
		reviews := &mockReviewRepository{
			saveFn: func(_ context.Context, review domain.Review) error {
				saved = review
				return nil
			},
		}
		events := &mockEventBus{
			publishReviewCreatedFn: func(_ context.Context, reviewID string, _ int) error {
				publishedID = reviewID
				return nil
			},
		}
		service := newTestService(reviews, &mockFavouriteRepository{}, events)

		review, err := service.CreateReview(context.Background(), 1, 5, "excellent", "author-1")

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if saved.ID != review.ID {
			t.Errorf("expected saved review %s, got %s", review.ID, saved.ID)
		}
		if publishedID != review.ID.String() {
			t.Errorf("expected published review %s, got %s", review.ID, publishedID)
		}
	})

	t.Run("rejects invalid payload before touching the repository", func(t *testing.T) {
		repoCalled := false
		reviews := &mockReviewRepository{
			saveFn: func(_ context.Context, _ domain.Review) error {
				repoCalled = true
				return nil
			},
		}
		service := newTestService(reviews, &mockFavouriteRepository{}, &mockEventBus{})

		_, err := service.CreateReview(context.Background(), 1, 0, "", "author-1")

		var validationErr *domain.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got: %v", err)
		}
		if repoCalled {
			t.Error("expected repository to remain untouched on validation failure")
		}
	})

	t.Run("returns review when event publish fails", func(t *testing.T) {
		events := &mockEventBus{
			publishReviewCreatedFn: func(_ context.Context, _ string, _ int) error {
				return errors.New("broker unavailable")
			},
		}
		service := newTestService(&mockReviewRepository{}, &mockFavouriteRepository{}, events)

		review, err := service.CreateReview(context.Background(), 1, 4, "good", "author-1")

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if review == nil {
			t.Fatal("expected review to be returned despite publish failure")
		}
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repoErr := errors.New("connection reset")
		reviews := &mockReviewRepository{
			saveFn: func(_ context.Context, _ domain.Review) error {
				return repoErr
			},
		}
		service := newTestService(reviews, &mockFavouriteRepository{}, &mockEventBus{})

		_, err := service.CreateReview(context.Background(), 1, 4, "good", "author-1")

		if !errors.Is(err, repoErr) {
			t.Errorf("expected repository error, got: %v", err)
		}
	})
}

func TestAddToFavourites(t *testing.T) {
	t.Run("creates marker for the subject", func(t *testing.T) {
		var saved domain.FavouriteProduct
		favourites := &mockFavouriteRepository{
			saveFn: func(_ context.Context, favourite domain.FavouriteProduct) error {
				saved = favourite
				return nil
			},
		}
		service := newTestService(&mockReviewRepository{}, favourites, &mockEventBus{})

		favourite, err := service.AddToFavourites(context.Background(), 3, "user-1")

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if saved.ProductID != 3 || saved.UserID != "user-1" {
			t.Errorf("unexpected saved marker: %+v", saved)
		}
		if favourite.ID != saved.ID {
			t.Errorf("expected returned marker to match saved one")
		}
	})

	t.Run("maps duplicate marker to validation failure", func(t *testing.T) {
		favourites := &mockFavouriteRepository{
			saveFn: func(_ context.Context, _ domain.FavouriteProduct) error {
				return ports.ErrAlreadyFavourite
			},
		}
		service := newTestService(&mockReviewRepository{}, favourites, &mockEventBus{})

		_, err := service.AddToFavourites(context.Background(), 3, "user-1")

		var validationErr *domain.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got: %v", err)
		}
		if len(validationErr.Messages) != 1 || validationErr.Messages[0] != "product is already in favourites" {
			t.Errorf("unexpected messages: %v", validationErr.Messages)
		}
	})

	t.Run("rejects non-positive product id", func(t *testing.T) {
		service := newTestService(&mockReviewRepository{}, &mockFavouriteRepository{}, &mockEventBus{})

		_, err := service.AddToFavourites(context.Background(), 0, "user-1")

		var validationErr *domain.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got: %v", err)
		}
	})
}

func TestRemoveFromFavourites(t *testing.T) {
	t.Run("removes existing marker", func(t *testing.T) {
		var gotProductID int
		favourites := &mockFavouriteRepository{
			deleteByProductFn: func(_ context.Context, productID int, _ string) error {
				gotProductID = productID
				return nil
			},
		}
		service := newTestService(&mockReviewRepository{}, favourites, &mockEventBus{})

		if err := service.RemoveFromFavourites(context.Background(), 3, "user-1"); err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if gotProductID != 3 {
			t.Errorf("expected delete for product 3, got %d", gotProductID)
		}
	})

	t.Run("succeeds for a product that is not favourited", func(t *testing.T) {
		service := newTestService(&mockReviewRepository{}, &mockFavouriteRepository{}, &mockEventBus{})

		if err := service.RemoveFromFavourites(context.Background(), 99, "user-1"); err != nil {
			t.Errorf("expected no error, got: %v", err)
		}
	})
}

func TestFindFavouriteByProduct(t *testing.T) {
	t.Run("returns ErrNotFound when the pair has no marker", func(t *testing.T) {
		service := newTestService(&mockReviewRepository{}, &mockFavouriteRepository{}, &mockEventBus{})

		_, err := service.FindFavouriteByProduct(context.Background(), 3, "user-1")

		if !errors.Is(err, ports.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got: %v", err)
		}
	})
}

func TestFindReviewsByProduct(t *testing.T) {
	t.Run("returns empty slice for product without reviews", func(t *testing.T) {
		service := newTestService(&mockReviewRepository{}, &mockFavouriteRepository{}, &mockEventBus{})

		reviews, err := service.FindReviewsByProduct(context.Background(), 42)

		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if reviews == nil || len(reviews) != 0 {
			t.Errorf("expected empty slice, got %v", reviews)
		}
	})
}
