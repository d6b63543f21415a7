package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CheckHealth pings the pool with a short deadline. The catalogue and
// feedback readyz endpoints report unready on failure.
func CheckHealth(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return pool.Ping(ctx)
}
