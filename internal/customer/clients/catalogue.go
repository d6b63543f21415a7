package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dejobratic/shopfront/internal/customer/domain"
)

// Catalogue calls the catalogue service's REST API.
type Catalogue struct {
	api apiClient
}

// NewCatalogue constructs a catalogue client around an injected
// http.Client whose connection pool lives for the process.
func NewCatalogue(httpClient *http.Client, baseURL string, timeout time.Duration) *Catalogue {
	return &Catalogue{api: newAPIClient(httpClient, baseURL, timeout)}
}

func (c *Catalogue) FindProduct(ctx context.Context, productID int) (*domain.Product, error) {
	var product domain.Product
	path := fmt.Sprintf("/catalogue-api/products/%d", productID)
	if err := c.api.do(ctx, "catalogue.find_product", http.MethodGet, path, "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Catalogue) FindAllProducts(ctx context.Context, filter string) ([]domain.Product, error) {
	path := "/catalogue-api/products"
	if filter != "" {
		path += "?filter=" + url.QueryEscape(filter)
	}

	var products []domain.Product
	if err := c.api.do(ctx, "catalogue.find_all_products", http.MethodGet, path, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
