package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dejobratic/shopfront/internal/customer/domain"
)

// Favourites calls the feedback service's favourite-products API.
type Favourites struct {
	api apiClient
}

// NewFavourites constructs a favourites client around an injected
// http.Client.
func NewFavourites(httpClient *http.Client, baseURL string, timeout time.Duration) *Favourites {
	return &Favourites{api: newAPIClient(httpClient, baseURL, timeout)}
}

func (c *Favourites) FindFavourites(ctx context.Context, subject string) ([]domain.FavouriteProduct, error) {
	var favourites []domain.FavouriteProduct
	if err := c.api.do(ctx, "favourites.find_all", http.MethodGet, "/feedback-api/favourite-products", subject, nil, &favourites); err != nil {
		return nil, err
	}
	if favourites == nil {
		favourites = []domain.FavouriteProduct{}
	}
	return favourites, nil
}

// FindFavouriteByProduct returns ports.ErrNotFound when the caller has not
// favourited the product. Absence is an answer here, not a failure.
func (c *Favourites) FindFavouriteByProduct(ctx context.Context, productID int, subject string) (*domain.FavouriteProduct, error) {
	path := fmt.Sprintf("/feedback-api/favourite-products/by-product-id/%d", productID)

	var favourite domain.FavouriteProduct
	if err := c.api.do(ctx, "favourites.find_by_product", http.MethodGet, path, subject, nil, &favourite); err != nil {
		return nil, err
	}
	return &favourite, nil
}

func (c *Favourites) AddToFavourites(ctx context.Context, productID int, subject string) (*domain.FavouriteProduct, error) {
	body := struct {
		ProductID int `json:"productId"`
	}{ProductID: productID}

	var favourite domain.FavouriteProduct
	if err := c.api.do(ctx, "favourites.add", http.MethodPost, "/feedback-api/favourite-products", subject, body, &favourite); err != nil {
		return nil, err
	}
	return &favourite, nil
}

func (c *Favourites) RemoveFromFavourites(ctx context.Context, productID int, subject string) error {
	path := fmt.Sprintf("/feedback-api/favourite-products/by-product-id/%d", productID)
	return c.api.do(ctx, "favourites.remove", http.MethodDelete, path, subject, nil, nil)
}
