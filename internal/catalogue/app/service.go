package app

import (
	"context"
	"log/slog"

	"github.com/dejobratic/shopfront/internal/catalogue/domain"
	"github.com/dejobratic/shopfront/internal/catalogue/ports"
)

// Service bundles use cases for managing the product catalogue.
type Service struct {
	repo   ports.ProductRepository
	logger *slog.Logger
}

// NewService wires required dependencies.
func NewService(repo ports.ProductRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// FindAllProducts returns products, optionally narrowed by a
// case-insensitive title substring filter.
func (s *Service) FindAllProducts(ctx context.Context, filter string) ([]domain.Product, error) {
	return s.repo.List(ctx, filter)
}

// FindProduct retrieves a product by ID.
func (s *Service) FindProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct validates and stores a new product.
func (s *Service) CreateProduct(ctx context.Context, title, details string) (*domain.Product, error) {
	product := domain.Product{Title: title, Details: details}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "product created", "product_id", created.ID)
	return created, nil
}

// UpdateProduct validates and applies new title/details to an existing
// product.
func (s *Service) UpdateProduct(ctx context.Context, id int, title, details string) error {
	product := domain.Product{ID: id, Title: title, Details: details}
	if err := product.Validate(); err != nil {
		return err
	}

	return s.repo.Update(ctx, id, title, details)
}

// DeleteProduct removes a product by ID.
func (s *Service) DeleteProduct(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
