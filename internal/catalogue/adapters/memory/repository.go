package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/dejobratic/shopfront/internal/catalogue/domain"
	"github.com/dejobratic/shopfront/internal/catalogue/ports"
)

// Repository provides an in-memory product store useful for local
// development and tests.
type Repository struct {
	mu       sync.RWMutex
	products map[int]domain.Product
	nextID   int
}

// NewRepository constructs a new in-memory repository.
func NewRepository() *Repository {
	return &Repository{products: make(map[int]domain.Product), nextID: 1}
}

// Create stores a new product and assigns its identifier.
func (r *Repository) Create(_ context.Context, product domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = product

	created := product
	return &created, nil
}

// GetByID fetches a single product by identifier.
func (r *Repository) GetByID(_ context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := product
	return &copy, nil
}

// List returns products whose title contains the filter, case-insensitively.
// An empty filter returns everything.
func (r *Repository) List(_ context.Context, filter string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(filter)
	result := make([]domain.Product, 0, len(r.products))
	for _, product := range r.products {
		if needle != "" && !strings.Contains(strings.ToLower(product.Title), needle) {
			continue
		}
		result = append(result, product)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// Update sets the title and details for a product.
func (r *Repository) Update(_ context.Context, id int, title, details string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return ports.ErrNotFound
	}

	product.Title = title
	product.Details = details
	r.products[id] = product
	return nil
}

// Delete removes a product by identifier.
func (r *Repository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.products, id)
	return nil
}
