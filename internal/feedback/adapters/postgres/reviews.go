package postgres

import (
	"context"
	"fmt"

	"github.com/dejobratic/shopfront/internal/feedback/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Save(ctx context.Context, review domain.Review) error {
	query := `
		INSERT INTO product_reviews (id, product_id, rating, review, author_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.ProductID,
		review.Rating,
		review.Text,
		review.AuthorID,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) FindAllByProductID(ctx context.Context, productID int) ([]domain.Review, error) {
	query := `
		SELECT id, product_id, rating, review, author_id
		FROM product_reviews
		WHERE product_id = $1
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("select reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.ProductID, &review.Rating, &review.Text, &review.AuthorID); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	return reviews, nil
}
