package repository

import (
	"context"
	"encoding/json"

	"staybilling/internal/infra"
	"staybilling/internal/infra/db"
	"staybilling/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.BookingSnapshot, error) {
	var (
		snap      commands.BookingSnapshot
		paramsRaw []byte
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, guest_id, host_id, status, check_in, cancellation_policy,
		        coupon_id, coupon_code, params, refund_status
		 FROM bookings
		 WHERE id = $1`,
		id,
	).Scan(
		&snap.ID, &snap.GuestID, &snap.HostID, &snap.Status, &snap.CheckIn,
		&snap.CancellationPolicy, &snap.CouponID, &snap.CouponCode,
		&paramsRaw, &snap.RefundStatus,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	if err := json.Unmarshal(paramsRaw, &snap.Params); err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking pricing params", err)
	}
	return &snap, nil
}

func (r *BookingRepository) UpdateRefundStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status string) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET refund_status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking refund status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
