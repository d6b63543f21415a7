package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dejobratic/shopfront/internal/catalogue/domain"
	"github.com/dejobratic/shopfront/internal/catalogue/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (title, details)
		VALUES ($1, $2)
		RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query, product.Title, product.Details).Scan(&product.ID); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	return &product, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `
		SELECT id, title, details
		FROM products
		WHERE id = $1
	`

	var product domain.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(&product.ID, &product.Title, &product.Details)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("select product: %w", err)
	}

	return &product, nil
}

func (r *Repository) List(ctx context.Context, filter string) ([]domain.Product, error) {
	query := `
		SELECT id, title, details
		FROM products
		WHERE $1 = '' OR title ILIKE '%' || $1 || '%'
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, filter)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.Title, &product.Details); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

func (r *Repository) Update(ctx context.Context, id int, title, details string) error {
	query := `
		UPDATE products
		SET title = $2, details = $3
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, title, details)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM products
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}

	return nil
}
