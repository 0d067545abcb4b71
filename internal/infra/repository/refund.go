package repository

import (
	"context"
	"encoding/json"

	"staybilling/internal/domain/pricing"
	"staybilling/internal/domain/refund"
	"staybilling/internal/infra"
	"staybilling/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RefundRepository struct {
	pool *pgxpool.Pool
}

func NewRefundRepository(pool *pgxpool.Pool) *RefundRepository {
	return &RefundRepository{pool: pool}
}

func (r *RefundRepository) Create(ctx context.Context, tx db.DBTX, rec *refund.Record) error {
	breakdown, err := json.Marshal(rec.Breakdown)
	if err != nil {
		return infra.WrapRepoErr("failed to encode refund breakdown", err)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO refunds (
		    id, payment_id, booking_id, amount_cents, reason, type,
		    scenario, breakdown, status, version
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING created_at, updated_at`,
		rec.ID, rec.PaymentID, rec.BookingID, rec.Amount.Cents(),
		rec.Reason, rec.Type, rec.Scenario, breakdown, rec.Status, rec.Version,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create refund", err)
	}
	return nil
}

func (r *RefundRepository) FindByID(ctx context.Context, id uuid.UUID) (*refund.Record, error) {
	var (
		rec          refund.Record
		breakdownRaw []byte
		amount       int64
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, payment_id, booking_id, amount_cents, reason, type,
		        scenario, breakdown, status, version, created_at, updated_at
		 FROM refunds
		 WHERE id = $1`,
		id,
	).Scan(
		&rec.ID, &rec.PaymentID, &rec.BookingID, &amount, &rec.Reason,
		&rec.Type, &rec.Scenario, &breakdownRaw, &rec.Status, &rec.Version,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("refund not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find refund", err)
	}

	if err := json.Unmarshal(breakdownRaw, &rec.Breakdown); err != nil {
		return nil, infra.WrapRepoErr("failed to decode refund breakdown", err)
	}
	rec.Amount = pricing.NewMoney(amount)
	return &rec, nil
}

// UpdateStatus is the optimistic single-writer guard: the transition
// lands only if nobody else has moved the record since it was read.
func (r *RefundRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, to refund.Status, version int) error {
	tag, err := tx.Exec(ctx,
		`UPDATE refunds
		 SET status = $2, version = version + 1, updated_at = now()
		 WHERE id = $1 AND version = $3`,
		id, to, version,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update refund status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("refund version conflict", nil, infra.KindVersionMismatch)
	}
	return nil
}
