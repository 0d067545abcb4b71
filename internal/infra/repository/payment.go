package repository

import (
	"context"
	"encoding/json"

	"staybilling/internal/domain/payment"
	"staybilling/internal/domain/pricing"
	"staybilling/internal/infra"
	"staybilling/internal/infra/db"
	"staybilling/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) Create(ctx context.Context, tx db.DBTX, rec *payment.Record) error {
	breakdown, err := json.Marshal(rec.Breakdown)
	if err != nil {
		return infra.WrapRepoErr("failed to encode breakdown", err)
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO payments (
		    id, booking_id, amount_cents, breakdown, platform_fee_cents,
		    host_earning_cents, payout_amount_cents, payout_status,
		    refund_flag, refunded_cents
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0)
		 RETURNING created_at, updated_at`,
		rec.ID, rec.BookingID, rec.Amount.Cents(), breakdown,
		rec.PlatformFee.Cents(), rec.HostEarning.Cents(),
		rec.Payout.Amount.Cents(), rec.Payout.Status, rec.RefundFlag,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("payment already exists for booking", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Record, error) {
	return r.findBy(ctx, `WHERE id = $1`, id)
}

func (r *PaymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*payment.Record, error) {
	return r.findBy(ctx, `WHERE booking_id = $1`, bookingID)
}

func (r *PaymentRepository) findBy(ctx context.Context, where string, arg any) (*payment.Record, error) {
	var (
		rec          payment.Record
		breakdownRaw []byte
		amount       int64
		platformFee  int64
		hostEarning  int64
		payoutAmount int64
		refunded     int64
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, booking_id, amount_cents, breakdown, platform_fee_cents,
		        host_earning_cents, payout_amount_cents, payout_status,
		        payout_released_at, refund_flag, refunded_cents,
		        created_at, updated_at
		 FROM payments `+where,
		arg,
	).Scan(
		&rec.ID, &rec.BookingID, &amount, &breakdownRaw, &platformFee,
		&hostEarning, &payoutAmount, &rec.Payout.Status,
		&rec.Payout.ReleasedAt, &rec.RefundFlag, &refunded,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}

	if err := json.Unmarshal(breakdownRaw, &rec.Breakdown); err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment breakdown", err)
	}
	rec.Amount = pricing.NewMoney(amount)
	rec.PlatformFee = pricing.NewMoney(platformFee)
	rec.HostEarning = pricing.NewMoney(hostEarning)
	rec.Payout.Amount = pricing.NewMoney(payoutAmount)
	rec.Refunded = pricing.NewMoney(refunded)
	return &rec, nil
}

func (r *PaymentRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	return r.findView(ctx, `WHERE id = $1`, id)
}

func (r *PaymentRepository) FindViewByBookingID(ctx context.Context, bookingID uuid.UUID) (*queries.PaymentView, error) {
	return r.findView(ctx, `WHERE booking_id = $1`, bookingID)
}

// findView serves the read side: the breakdown column passes through
// as raw JSON rather than round-tripping through the domain type.
func (r *PaymentRepository) findView(ctx context.Context, where string, arg any) (*queries.PaymentView, error) {
	var v queries.PaymentView
	err := r.pool.QueryRow(ctx,
		`SELECT id, booking_id, amount_cents, breakdown, payout_status,
		        refund_flag, created_at, updated_at
		 FROM payments `+where,
		arg,
	).Scan(
		&v.ID, &v.BookingID, &v.AmountCents, &v.Breakdown,
		&v.PayoutStatus, &v.RefundFlag, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}
	return &v, nil
}

// ApplyRefund appends a completed refund amount and recomputes the
// refund flag in one statement.
func (r *PaymentRepository) ApplyRefund(ctx context.Context, tx db.DBTX, id uuid.UUID, refunded pricing.Money, flag payment.RefundFlag) error {
	tag, err := tx.Exec(ctx,
		`UPDATE payments
		 SET refunded_cents = refunded_cents + $2,
		     refund_flag    = $3,
		     updated_at     = now()
		 WHERE id = $1`,
		id, refunded.Cents(), flag,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to apply refund to payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}
