package repository

import (
	"context"

	"staybilling/internal/domain/rate"
	"staybilling/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RateRepository struct {
	pool *pgxpool.Pool
}

func NewRateRepository(pool *pgxpool.Pool) *RateRepository {
	return &RateRepository{pool: pool}
}

func (r *RateRepository) FindCurrent(ctx context.Context) (*rate.Record, error) {
	var rec rate.Record
	err := r.pool.QueryRow(ctx,
		`SELECT id, rate, version, effective_from, effective_to, active, created_at
		 FROM platform_rates
		 WHERE active AND effective_from <= now()
		 ORDER BY effective_from DESC
		 LIMIT 1`,
	).Scan(&rec.ID, &rec.Rate, &rec.Version, &rec.EffectiveFrom, &rec.EffectiveTo, &rec.Active, &rec.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("no active platform rate", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find current rate", err)
	}
	return &rec, nil
}

// Activate swaps the active flag in one statement so at most one record
// is ever active: the CTE deactivates whatever was active and the
// insert activates the new record with the next version number.
func (r *RateRepository) Activate(ctx context.Context, rec *rate.Record) error {
	err := r.pool.QueryRow(ctx,
		`WITH deactivated AS (
		   UPDATE platform_rates SET active = FALSE WHERE active = TRUE
		 )
		 INSERT INTO platform_rates (id, rate, version, effective_from, effective_to, active)
		 VALUES ($1, $2,
		         COALESCE((SELECT MAX(version) FROM platform_rates), 0) + 1,
		         $3, $4, TRUE)
		 RETURNING version, created_at`,
		rec.ID, rec.Rate, rec.EffectiveFrom, rec.EffectiveTo,
	).Scan(&rec.Version, &rec.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to activate rate", err)
	}
	return nil
}
