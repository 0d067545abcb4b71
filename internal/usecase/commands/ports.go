package commands

import (
	"context"
	"time"

	"staybilling/internal/domain/audit"
	"staybilling/internal/domain/payment"
	"staybilling/internal/domain/pricing"
	"staybilling/internal/domain/rate"
	"staybilling/internal/domain/refund"
	"staybilling/internal/infra/db"

	"github.com/google/uuid"
)

// Snapshots are minimal read shapes for command-side validation.

type CouponSnapshot struct {
	ID               uuid.UUID
	Code             string
	Kind             string
	Amount           float64
	MaxDiscountCents *int64
	UsageLimit       int
	UsedCount        int
	UsedBy           []uuid.UUID
	Active           bool
	ValidFrom        *time.Time
	ValidTo          *time.Time
}

// BookingSnapshot is the entity-store view of a booking this engine
// consumes. Booking lifecycle management lives elsewhere; only the
// fields needed for settlement and refunds appear here.
type BookingSnapshot struct {
	ID                 uuid.UUID
	GuestID            uuid.UUID
	HostID             uuid.UUID
	Status             string
	CheckIn            time.Time
	CancellationPolicy string
	CouponID           *uuid.UUID
	CouponCode         *string
	Params             pricing.Params
	RefundStatus       string
}

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type RateRepository interface {
	// FindCurrent returns the most recently effective active record.
	FindCurrent(ctx context.Context) (*rate.Record, error)
	// Activate deactivates the prior active record and activates rec in
	// one atomic statement; two sequential writes would briefly leave
	// zero or two active records.
	Activate(ctx context.Context, rec *rate.Record) error
}

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (*CouponSnapshot, error)
	// Redeem increments used_count and appends the user in a single
	// conditional statement; a CONFLICT kind means the limit was hit or
	// the user already redeemed, concurrently or otherwise.
	Redeem(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) error
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UpdateRefundStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status string) error
}

type PaymentRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec *payment.Record) error
	FindByID(ctx context.Context, id uuid.UUID) (*payment.Record, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*payment.Record, error)
	ApplyRefund(ctx context.Context, tx db.DBTX, id uuid.UUID, refunded pricing.Money, flag payment.RefundFlag) error
}

type RefundRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec *refund.Record) error
	FindByID(ctx context.Context, id uuid.UUID) (*refund.Record, error)
	// UpdateStatus succeeds only when the stored version matches;
	// a VERSION_MISMATCH kind signals a concurrent transition.
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, to refund.Status, version int) error
}

type AuditRepository interface {
	Append(ctx context.Context, tx db.DBTX, e *audit.Entry) error
	MarkProcessed(ctx context.Context, tx db.DBTX, id uuid.UUID, status audit.ProcessingStatus, elapsedMs int64) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind string, topic string, payload any, runAt time.Time) error
}
