package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dejobratic/shopfront/internal/customer/domain"
)

// Reviews calls the feedback service's product-reviews API.
type Reviews struct {
	api apiClient
}

// NewReviews constructs a reviews client around an injected http.Client.
func NewReviews(httpClient *http.Client, baseURL string, timeout time.Duration) *Reviews {
	return &Reviews{api: newAPIClient(httpClient, baseURL, timeout)}
}

// FindReviewsByProduct returns the product's reviews. A product without
// reviews yields an empty slice, never an error.
func (c *Reviews) FindReviewsByProduct(ctx context.Context, productID int) ([]domain.Review, error) {
	path := fmt.Sprintf("/feedback-api/product-reviews/by-product-id/%d", productID)

	var reviews []domain.Review
	if err := c.api.do(ctx, "reviews.find_by_product", http.MethodGet, path, "", nil, &reviews); err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

func (c *Reviews) CreateReview(ctx context.Context, productID int, payload domain.NewReviewPayload, subject string) (*domain.Review, error) {
	body := struct {
		ProductID int    `json:"productId"`
		Rating    int    `json:"rating"`
		Review    string `json:"review"`
	}{
		ProductID: productID,
		Rating:    payload.Rating,
		Review:    payload.Review,
	}

	var review domain.Review
	if err := c.api.do(ctx, "reviews.create", http.MethodPost, "/feedback-api/product-reviews", subject, body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
