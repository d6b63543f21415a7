package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dejobratic/shopfront/internal/customer/domain"
	"github.com/dejobratic/shopfront/internal/customer/metrics"
	"github.com/dejobratic/shopfront/internal/customer/ports"
	"golang.org/x/sync/errgroup"
)

// Service is the aggregation orchestrator behind the customer product
// pages. Per request it fans out to the catalogue and feedback services,
// joins the results into one page model, and resolves every interaction to
// a single terminal outcome. It holds no state between requests and is
// safe for concurrent use.
type Service struct {
	catalogue  ports.CatalogueClient
	reviews    ports.ReviewsClient
	favourites ports.FavouritesClient
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// NewService wires required dependencies.
func NewService(
	catalogue ports.CatalogueClient,
	reviews ports.ReviewsClient,
	favourites ports.FavouritesClient,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		catalogue:  catalogue,
		reviews:    reviews,
		favourites: favourites,
		logger:     logger,
		metrics:    m,
	}
}

// ViewProduct builds the product page for the given caller. The product
// load runs first and short-circuits on absence; the reviews and
// favourite-marker lookups then run concurrently and are joined before the
// page is considered ready.
func (s *Service) ViewProduct(ctx context.Context, productID int, subject string) domain.Result {
	product, terminal := s.loadProduct(ctx, productID)
	if terminal != nil {
		return s.finish(ctx, *terminal)
	}

	var (
		reviews      []domain.Review
		inFavourites bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.reviews.FindReviewsByProduct(gctx, productID)
		if err != nil {
			return err
		}
		reviews = found
		return nil
	})
	g.Go(func() error {
		marked, err := s.favouriteStatus(gctx, productID, subject)
		if err != nil {
			return err
		}
		inFavourites = marked
		return nil
	})

	if err := g.Wait(); err != nil {
		return s.finish(ctx, domain.Failed(err))
	}

	return s.finish(ctx, domain.Ready(&domain.ProductPage{
		Product:      *product,
		Reviews:      reviews,
		InFavourites: inFavourites,
	}))
}

// CreateReview submits the caller's review. A remote rejection keeps the
// page alive: the favourite status is looked up again and the rejected
// input is echoed back with the validator's messages, in order, so the
// form can be re-rendered without losing what the user typed.
func (s *Service) CreateReview(ctx context.Context, productID int, payload domain.NewReviewPayload, subject string) domain.Result {
	product, terminal := s.loadProduct(ctx, productID)
	if terminal != nil {
		return s.finish(ctx, *terminal)
	}

	_, err := s.reviews.CreateReview(ctx, productID, payload, subject)

	var validationErr *ports.ValidationError
	switch {
	case err == nil:
		return s.finish(ctx, domain.RedirectToProduct(productID))

	case errors.As(err, &validationErr):
		// Reviews are not re-fetched: they are not what is being edited.
		inFavourites, favErr := s.favouriteStatus(ctx, productID, subject)
		if favErr != nil {
			return s.finish(ctx, domain.Failed(favErr))
		}
		return s.finish(ctx, domain.ReRenderWithErrors(&domain.ProductPage{
			Product:      *product,
			Reviews:      []domain.Review{},
			InFavourites: inFavourites,
			Payload:      &payload,
			Errors:       validationErr.Messages,
		}))

	default:
		return s.finish(ctx, domain.Failed(err))
	}
}

// AddToFavourites marks the product as a favourite. The marker is
// best-effort: any failure, validation or infrastructure, is logged and
// counted but never blocks navigation back to the product page.
func (s *Service) AddToFavourites(ctx context.Context, productID int, subject string) domain.Result {
	product, terminal := s.loadProduct(ctx, productID)
	if terminal != nil {
		return s.finish(ctx, *terminal)
	}

	if _, err := s.favourites.AddToFavourites(ctx, product.ID, subject); err != nil {
		s.logger.InfoContext(ctx, "add to favourites failed",
			"product_id", productID, "error", err)
		s.metrics.RecordSwallowedFailure(ctx, "favourites.add")
	}

	return s.finish(ctx, domain.RedirectToProduct(productID))
}

// RemoveFromFavourites unmarks the product. Removal is idempotent end to
// end, so like AddToFavourites it always redirects.
func (s *Service) RemoveFromFavourites(ctx context.Context, productID int, subject string) domain.Result {
	product, terminal := s.loadProduct(ctx, productID)
	if terminal != nil {
		return s.finish(ctx, *terminal)
	}

	if err := s.favourites.RemoveFromFavourites(ctx, product.ID, subject); err != nil {
		s.logger.InfoContext(ctx, "remove from favourites failed",
			"product_id", productID, "error", err)
		s.metrics.RecordSwallowedFailure(ctx, "favourites.remove")
	}

	return s.finish(ctx, domain.RedirectToProduct(productID))
}

// ListProducts builds the product list page, optionally filtered by title.
func (s *Service) ListProducts(ctx context.Context, filter string) (*domain.ProductListPage, error) {
	products, err := s.catalogue.FindAllProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &domain.ProductListPage{Filter: filter, Products: products}, nil
}

// ListFavourites builds the favourites page: the caller's markers narrow
// the catalogue listing down to favourited products.
func (s *Service) ListFavourites(ctx context.Context, filter, subject string) (*domain.ProductListPage, error) {
	favourites, err := s.favourites.FindFavourites(ctx, subject)
	if err != nil {
		return nil, err
	}

	favouriteIDs := make(map[int]struct{}, len(favourites))
	for _, favourite := range favourites {
		favouriteIDs[favourite.ProductID] = struct{}{}
	}

	products, err := s.catalogue.FindAllProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	marked := make([]domain.Product, 0, len(favouriteIDs))
	for _, product := range products {
		if _, ok := favouriteIDs[product.ID]; ok {
			marked = append(marked, product)
		}
	}

	return &domain.ProductListPage{Filter: filter, Products: marked}, nil
}

// loadProduct fetches the product every interaction depends on. It
// returns a terminal result instead when the product is missing or the
// catalogue is unavailable; the caller must not proceed past either.
func (s *Service) loadProduct(ctx context.Context, productID int) (*domain.Product, *domain.Result) {
	product, err := s.catalogue.FindProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			terminal := domain.NotFound()
			return nil, &terminal
		}
		terminal := domain.Failed(err)
		return nil, &terminal
	}
	return product, nil
}

// favouriteStatus resolves the caller's favourite marker to a boolean.
// Absence means "not favourited". Unavailability propagates: rendering
// "not favourite" during an outage would hide the outage, so this read
// fails closed.
func (s *Service) favouriteStatus(ctx context.Context, productID int, subject string) (bool, error) {
	_, err := s.favourites.FindFavouriteByProduct(ctx, productID, subject)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// finish records the terminal outcome and logs the only category worth
// alerting on.
func (s *Service) finish(ctx context.Context, result domain.Result) domain.Result {
	s.metrics.RecordPageView(ctx, outcomeName(result.Outcome))

	if result.Outcome == domain.OutcomeFailed {
		s.logger.ErrorContext(ctx, "downstream unavailable", "error", result.Err)
	}

	return result
}

func outcomeName(outcome domain.Outcome) string {
	switch outcome {
	case domain.OutcomeReady:
		return "ready"
	case domain.OutcomeRedirect:
		return "redirect"
	case domain.OutcomeReRender:
		return "re_render"
	case domain.OutcomeNotFound:
		return "not_found"
	case domain.OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
