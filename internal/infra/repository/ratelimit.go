package repository

import (
	"context"
	"time"

	"staybilling/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RateLimitRepository struct {
	pool *pgxpool.Pool
}

func NewRateLimitRepository(pool *pgxpool.Pool) *RateLimitRepository {
	return &RateLimitRepository{pool: pool}
}

// Increment bumps the fixed-window counter for one subject and returns
// the count after the bump. The upsert keeps concurrent requests from
// racing on the first hit of a window.
func (r *RateLimitRepository) Increment(ctx context.Context, subject string, windowStart time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO rate_limit_windows (subject, window_start, count)
		 VALUES ($1, $2, 1)
		 ON CONFLICT (subject, window_start)
		 DO UPDATE SET count = rate_limit_windows.count + 1
		 RETURNING count`,
		subject, windowStart,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment rate limit window", err)
	}
	return count, nil
}
