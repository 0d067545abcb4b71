package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"staybilling/internal/domain/audit"
	"staybilling/internal/domain/coupon"
	"staybilling/internal/domain/payment"
	"staybilling/internal/domain/pricing"
	"staybilling/internal/domain/rate"
	reqdto "staybilling/internal/handler/dto/request"
	"staybilling/internal/infra"
	"staybilling/internal/infra/db"
	"staybilling/internal/pkg/clock"
	"staybilling/internal/pkg/config"
	"staybilling/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrPaymentExists   = errs.New("payment already exists for booking")
	ErrPriceMismatch   = errs.New("client breakdown does not match server computation")
)

type CreatePaymentResult struct {
	Payment     *payment.Record
	Consistency payment.ConsistencyResult
	Rate        rate.Provenance
}

type PaymentCommands interface {
	// ValidateAndCreatePayment recomputes the booking's breakdown from
	// stored params, validates the client figures against it, and only
	// then writes the payment. The client figures never reach storage
	// as authoritative amounts.
	ValidateAndCreatePayment(ctx context.Context, req reqdto.CreatePaymentRequest, sec audit.SecurityContext) (*CreatePaymentResult, error)
}

type paymentUseCaseImpl struct {
	engine           *pricing.Engine
	rateResolver     *RateResolver
	bookingRepo      BookingRepository
	paymentRepo      PaymentRepository
	couponRepo       CouponRepository
	auditRepo        AuditRepository
	notificationRepo NotificationRepository
	db               *pgxpool.Pool
	clock            clock.Clock
	tolerance        float64
}

func NewPaymentUseCase(
	engine *pricing.Engine,
	rateResolver *RateResolver,
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	couponRepo CouponRepository,
	auditRepo AuditRepository,
	notificationRepo NotificationRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
	cfg config.BillingConfig,
) PaymentCommands {
	return &paymentUseCaseImpl{
		engine:           engine,
		rateResolver:     rateResolver,
		bookingRepo:      bookingRepo,
		paymentRepo:      paymentRepo,
		couponRepo:       couponRepo,
		auditRepo:        auditRepo,
		notificationRepo: notificationRepo,
		db:               db,
		clock:            clock,
		tolerance:        cfg.ToleranceDollars,
	}
}

func (p *paymentUseCaseImpl) ValidateAndCreatePayment(
	ctx context.Context,
	req reqdto.CreatePaymentRequest,
	sec audit.SecurityContext,
) (*CreatePaymentResult, error) {
	start := p.clock.Now()

	booking, err := p.bookingRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if _, err := p.paymentRepo.FindByBookingID(ctx, booking.ID); err == nil {
		return nil, ErrPaymentExists
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	prov := p.rateResolver.Resolve(ctx)
	breakdown, couponEntity, err := p.recompute(ctx, booking, prov)
	if err != nil {
		return nil, err
	}

	client := req.ToClientBreakdown()
	consistency := payment.CheckConsistency(client, breakdown, p.tolerance)

	entry := p.newPaymentEntry(booking, client, breakdown, consistency, prov, sec)

	if !consistency.IsValid {
		p.recordValidationFailure(ctx, entry, start)
		return nil, ErrPriceMismatch
	}

	rec := newPaymentRecord(booking.ID, breakdown)
	if err := p.executePaymentTransaction(ctx, rec, booking, couponEntity); err != nil {
		return nil, err
	}
	p.recordPaymentCreated(ctx, rec.ID, entry, start)

	return &CreatePaymentResult{
		Payment:     rec,
		Consistency: consistency,
		Rate:        prov,
	}, nil
}

// recompute rebuilds the authoritative breakdown from the stored
// booking params, reapplying any attached coupon against current
// coupon state. A coupon that became unusable since the quote drops
// only the discount, never the payment: the consistency check then
// reports the resulting difference to the client.
func (p *paymentUseCaseImpl) recompute(
	ctx context.Context,
	booking *BookingSnapshot,
	prov rate.Provenance,
) (pricing.Breakdown, *coupon.Coupon, error) {
	params := booking.Params
	params.Discount = pricing.Money{}

	breakdown, err := p.engine.Calculate(params, prov.Rate)
	if err != nil {
		return pricing.Breakdown{}, nil, errs.Mark(err, ErrDomainValidation)
	}
	if booking.CouponCode == nil {
		return breakdown, nil, nil
	}

	snap, err := p.couponRepo.FindByCode(ctx, *booking.CouponCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("stored coupon no longer exists, pricing without discount",
				"booking_id", booking.ID, "code", *booking.CouponCode)
			return breakdown, nil, nil
		}
		return pricing.Breakdown{}, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	couponEntity, err := couponFromSnapshot(snap)
	if err != nil {
		slog.Warn("stored coupon has an invalid definition, pricing without discount",
			"booking_id", booking.ID, "code", *booking.CouponCode, "error", err)
		return breakdown, nil, nil
	}
	if err := couponEntity.ValidateUsage(p.clock.Now(), booking.GuestID); err != nil {
		slog.Warn("stored coupon no longer redeemable, pricing without discount",
			"booking_id", booking.ID, "code", *booking.CouponCode, "error", err)
		return breakdown, nil, nil
	}

	params.Discount = couponEntity.DiscountFor(breakdown.HostSubtotal)
	breakdown, err = p.engine.Calculate(params, prov.Rate)
	if err != nil {
		return pricing.Breakdown{}, nil, errs.Mark(err, ErrDomainValidation)
	}
	return breakdown, couponEntity, nil
}

func (p *paymentUseCaseImpl) newPaymentEntry(
	booking *BookingSnapshot,
	client payment.ClientBreakdown,
	breakdown pricing.Breakdown,
	consistency payment.ConsistencyResult,
	prov rate.Provenance,
	sec audit.SecurityContext,
) *audit.Entry {
	action, severity := audit.ActionPaymentCreated, audit.SeverityInfo
	if !consistency.IsValid {
		action, severity = audit.ActionValidationFailed, audit.SeverityCritical
	}

	entry := audit.NewEntry(action, severity)
	bookingID := booking.ID
	entry.BookingID = &bookingID
	params := booking.Params
	entry.Params = &params
	entry.ClientBreakdown = &client
	entry.ServerBreakdown = &breakdown
	entry.Validation = &consistency
	entry.RateProvenance = prov
	entry.Security = sec
	return entry
}

// recordValidationFailure persists the critical entry outside the
// payment path. An audit write failure never changes the mismatch
// outcome; it is only logged.
func (p *paymentUseCaseImpl) recordValidationFailure(ctx context.Context, entry *audit.Entry, start time.Time) {
	if err := p.auditRepo.Append(ctx, p.db, entry); err != nil {
		slog.Warn("failed to record validation failure", "booking_id", entry.BookingID, "error", err)
		return
	}
	elapsed := p.clock.Now().Sub(start).Milliseconds()
	if err := p.auditRepo.MarkProcessed(ctx, p.db, entry.ID, audit.ProcessingRejected, elapsed); err != nil {
		slog.Warn("failed to close validation failure entry", "audit_id", entry.ID, "error", err)
	}
}

// recordPaymentCreated runs after the payment commit. The payment is
// already durable; a lost audit entry is logged, never surfaced.
func (p *paymentUseCaseImpl) recordPaymentCreated(ctx context.Context, paymentID uuid.UUID, entry *audit.Entry, start time.Time) {
	entry.PaymentID = &paymentID
	if err := p.auditRepo.Append(ctx, p.db, entry); err != nil {
		slog.Warn("failed to record payment audit entry", "payment_id", paymentID, "error", err)
		return
	}
	elapsed := p.clock.Now().Sub(start).Milliseconds()
	if err := p.auditRepo.MarkProcessed(ctx, p.db, entry.ID, audit.ProcessingCompleted, elapsed); err != nil {
		slog.Warn("failed to close payment audit entry", "audit_id", entry.ID, "error", err)
	}
}

func (p *paymentUseCaseImpl) executePaymentTransaction(
	ctx context.Context,
	rec *payment.Record,
	booking *BookingSnapshot,
	couponEntity *coupon.Coupon,
) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := p.paymentRepo.Create(ctx, tx, rec); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return ErrPaymentExists
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if couponEntity != nil {
		if err := p.couponRepo.Redeem(ctx, tx, couponEntity.ID(), booking.GuestID); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrInvalidCoupon)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	notificationPayload := map[string]any{
		"payment_id":   rec.ID,
		"booking_id":   booking.ID,
		"amount_cents": rec.Amount.Cents(),
		"type":         "payment_created",
	}
	if err := p.notificationRepo.CreateJob(ctx, tx, "email", "payment_created", notificationPayload, p.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func newPaymentRecord(bookingID uuid.UUID, breakdown pricing.Breakdown) *payment.Record {
	return &payment.Record{
		ID:          uuid.New(),
		BookingID:   bookingID,
		Amount:      breakdown.TotalAmount,
		Breakdown:   breakdown,
		PlatformFee: breakdown.PlatformFee,
		HostEarning: breakdown.HostEarning,
		Payout: payment.Payout{
			Amount: breakdown.HostEarning,
			Status: payment.PayoutPending,
		},
		RefundFlag: payment.RefundNone,
	}
}

// isTxClosed filters the expected rollback error after a successful
// commit so the deferred rollback stays silent on the happy path.
func isTxClosed(err error) bool {
	return errors.Is(err, pgx.ErrTxClosed)
}

var _ db.DBTX = (*pgxpool.Pool)(nil)
