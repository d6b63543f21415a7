package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dejobratic/shopfront/internal/feedback/domain"
	"github.com/dejobratic/shopfront/internal/feedback/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavouriteProductRepository struct {
	pool *pgxpool.Pool
}

func NewFavouriteProductRepository(pool *pgxpool.Pool) *FavouriteProductRepository {
	return &FavouriteProductRepository{pool: pool}
}

func (r *FavouriteProductRepository) Save(ctx context.Context, favourite domain.FavouriteProduct) error {
	query := `
		INSERT INTO favourite_products (id, product_id, user_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id, user_id) DO NOTHING
	`

	tag, err := r.pool.Exec(ctx, query, favourite.ID, favourite.ProductID, favourite.UserID)
	if err != nil {
		return fmt.Errorf("insert favourite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrAlreadyFavourite
	}

	return nil
}

func (r *FavouriteProductRepository) FindByProductID(ctx context.Context, productID int, userID string) (*domain.FavouriteProduct, error) {
	query := `
		SELECT id, product_id, user_id
		FROM favourite_products
		WHERE product_id = $1 AND user_id = $2
	`

	var favourite domain.FavouriteProduct
	err := r.pool.QueryRow(ctx, query, productID, userID).
		Scan(&favourite.ID, &favourite.ProductID, &favourite.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("select favourite: %w", err)
	}

	return &favourite, nil
}

func (r *FavouriteProductRepository) FindAllByUserID(ctx context.Context, userID string) ([]domain.FavouriteProduct, error) {
	query := `
		SELECT id, product_id, user_id
		FROM favourite_products
		WHERE user_id = $1
		ORDER BY product_id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("select favourites: %w", err)
	}
	defer rows.Close()

	favourites := make([]domain.FavouriteProduct, 0)
	for rows.Next() {
		var favourite domain.FavouriteProduct
		if err := rows.Scan(&favourite.ID, &favourite.ProductID, &favourite.UserID); err != nil {
			return nil, fmt.Errorf("scan favourite: %w", err)
		}
		favourites = append(favourites, favourite)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favourites: %w", err)
	}

	return favourites, nil
}

// DeleteByProductID is idempotent: deleting a missing marker succeeds.
func (r *FavouriteProductRepository) DeleteByProductID(ctx context.Context, productID int, userID string) error {
	query := `
		DELETE FROM favourite_products
		WHERE product_id = $1 AND user_id = $2
	`

	if _, err := r.pool.Exec(ctx, query, productID, userID); err != nil {
		return fmt.Errorf("delete favourite: %w", err)
	}

	return nil
}
