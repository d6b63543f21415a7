package ports

import (
	"context"
	"errors"

	"github.com/dejobratic/shopfront/internal/catalogue/domain"
)

// ProductRepository exposes persistence operations required by the
// application layer.
type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	List(ctx context.Context, filter string) ([]domain.Product, error)
	Update(ctx context.Context, id int, title, details string) error
	Delete(ctx context.Context, id int) error
}

var (
	// ErrNotFound is returned when the requested product does not exist.
	ErrNotFound = errors.New("product not found")
)
