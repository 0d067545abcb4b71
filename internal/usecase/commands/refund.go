package commands

import (
	"context"
	"log/slog"

	"staybilling/internal/domain/audit"
	"staybilling/internal/domain/payment"
	"staybilling/internal/domain/refund"
	reqdto "staybilling/internal/handler/dto/request"
	"staybilling/internal/infra"
	"staybilling/internal/infra/db"
	"staybilling/internal/pkg/clock"
	"staybilling/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrPaymentNotFound      = errs.New("payment not found")
	ErrRefundNotFound       = errs.New("refund not found")
	ErrRefundPolicyViolated = errs.New("booking state forbids refund")
	ErrInvalidTransition    = errs.New("invalid refund status transition")
	ErrVersionConflict      = errs.New("refund was modified concurrently")
)

type RefundCommands interface {
	// ComputeRefund previews what a refund request would yield without
	// persisting anything beyond the audit entry.
	ComputeRefund(ctx context.Context, req reqdto.ComputeRefundRequest, sec audit.SecurityContext) (*refund.Result, error)
	// CreateRefund computes and persists a pending refund request.
	CreateRefund(ctx context.Context, req reqdto.CreateRefundRequest, sec audit.SecurityContext) (*refund.Record, error)
	// TransitionRefund moves a refund through its lifecycle under an
	// optimistic version check; completing it settles the payment and
	// booking in the same transaction.
	TransitionRefund(ctx context.Context, refundID uuid.UUID, req reqdto.TransitionRefundRequest) (*refund.Record, error)
}

type refundUseCaseImpl struct {
	paymentRepo      PaymentRepository
	bookingRepo      BookingRepository
	refundRepo       RefundRepository
	auditRepo        AuditRepository
	notificationRepo NotificationRepository
	db               *pgxpool.Pool
	clock            clock.Clock
}

func NewRefundUseCase(
	paymentRepo PaymentRepository,
	bookingRepo BookingRepository,
	refundRepo RefundRepository,
	auditRepo AuditRepository,
	notificationRepo NotificationRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) RefundCommands {
	return &refundUseCaseImpl{
		paymentRepo:      paymentRepo,
		bookingRepo:      bookingRepo,
		refundRepo:       refundRepo,
		auditRepo:        auditRepo,
		notificationRepo: notificationRepo,
		db:               db,
		clock:            clock,
	}
}

func (r *refundUseCaseImpl) ComputeRefund(
	ctx context.Context,
	req reqdto.ComputeRefundRequest,
	sec audit.SecurityContext,
) (*refund.Result, error) {
	paymentRec, _, result, err := r.computeForPayment(ctx, req.PaymentID, req.Reason, req.Type)
	if err != nil {
		return nil, err
	}
	r.recordComputation(ctx, paymentRec, result, sec)
	return result, nil
}

func (r *refundUseCaseImpl) CreateRefund(
	ctx context.Context,
	req reqdto.CreateRefundRequest,
	sec audit.SecurityContext,
) (*refund.Record, error) {
	paymentRec, booking, result, err := r.computeForPayment(ctx, req.PaymentID, req.Reason, req.Type)
	if err != nil {
		return nil, err
	}
	if result.Breakdown.Amount.IsZero() {
		return nil, ErrRefundPolicyViolated
	}

	rec := refund.NewRecord(paymentRec.ID, booking.ID, *result, refund.Reason(req.Reason), normalizeType(req.Type))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := r.refundRepo.Create(ctx, tx, rec); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	notificationPayload := map[string]any{
		"refund_id":    rec.ID,
		"payment_id":   rec.PaymentID,
		"amount_cents": rec.Amount.Cents(),
		"type":         "refund_requested",
	}
	if err := r.notificationRepo.CreateJob(ctx, tx, "email", "refund_requested", notificationPayload, r.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r.recordComputation(ctx, paymentRec, result, sec)
	return rec, nil
}

func (r *refundUseCaseImpl) TransitionRefund(
	ctx context.Context,
	refundID uuid.UUID,
	req reqdto.TransitionRefundRequest,
) (*refund.Record, error) {
	rec, err := r.refundRepo.FindByID(ctx, refundID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRefundNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	to := refund.Status(req.Status)
	if !rec.Status.CanTransition(to) {
		return nil, ErrInvalidTransition
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := r.refundRepo.UpdateStatus(ctx, tx, rec.ID, to, req.Version); err != nil {
		if infra.IsKind(err, infra.KindVersionMismatch) {
			return nil, ErrVersionConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if to == refund.StatusCompleted {
		if err := r.settleCompletedRefund(ctx, tx, rec); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	updated, err := r.refundRepo.FindByID(ctx, rec.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return updated, nil
}

// settleCompletedRefund applies the refund to the payment, stamps the
// booking, and enqueues the completion notice, all inside the caller's
// transaction.
func (r *refundUseCaseImpl) settleCompletedRefund(ctx context.Context, tx db.DBTX, rec *refund.Record) error {
	paymentRec, err := r.paymentRepo.FindByID(ctx, rec.PaymentID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	newRefunded := paymentRec.Refunded.Add(rec.Amount)
	flag := payment.FlagForRefunded(newRefunded, paymentRec.Amount)

	if err := r.paymentRepo.ApplyRefund(ctx, tx, paymentRec.ID, rec.Amount, flag); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := r.bookingRepo.UpdateRefundStatus(ctx, tx, rec.BookingID, string(flag)); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	notificationPayload := map[string]any{
		"refund_id":    rec.ID,
		"payment_id":   rec.PaymentID,
		"amount_cents": rec.Amount.Cents(),
		"type":         "refund_completed",
	}
	if err := r.notificationRepo.CreateJob(ctx, tx, "email", "refund_completed", notificationPayload, r.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// computeForPayment loads the payment and its booking and runs the
// refund calculator over the stored breakdown.
func (r *refundUseCaseImpl) computeForPayment(
	ctx context.Context,
	paymentID uuid.UUID,
	reason, typ string,
) (*payment.Record, *BookingSnapshot, *refund.Result, error) {
	paymentRec, err := r.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, nil, ErrPaymentNotFound
		}
		return nil, nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if paymentRec.RefundFlag == payment.RefundFull {
		return nil, nil, nil, ErrRefundPolicyViolated
	}

	booking, err := r.bookingRepo.FindByID(ctx, paymentRec.BookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, nil, ErrBookingNotFound
		}
		return nil, nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	in := refund.Input{
		BookingConfirmed: booking.Status != BookingStatusPending,
		CancelledByHost:  refund.Reason(reason) == refund.ReasonHostCancelled,
		Reason:           refund.Reason(reason),
		Type:             normalizeType(typ),
		Policy:           refund.Policy(booking.CancellationPolicy),
		CheckIn:          booking.CheckIn,
		Now:              r.clock.Now(),
	}

	result, err := refund.Calculate(paymentRec.Breakdown, in)
	if err != nil {
		return nil, nil, nil, errs.Mark(err, ErrRefundPolicyViolated)
	}

	// Prior completed refunds shrink what is still refundable; the
	// running total never passes the original charge.
	remaining := paymentRec.Amount.Sub(paymentRec.Refunded)
	result.Breakdown = result.Breakdown.CapAt(remaining)

	return paymentRec, booking, &result, nil
}

// recordComputation appends the refund_computed entry; failures are
// logged, never surfaced, since the refund itself already persisted.
func (r *refundUseCaseImpl) recordComputation(
	ctx context.Context,
	paymentRec *payment.Record,
	result *refund.Result,
	sec audit.SecurityContext,
) {
	entry := audit.NewEntry(audit.ActionRefundComputed, audit.SeverityInfo)
	paymentID := paymentRec.ID
	bookingID := paymentRec.BookingID
	entry.PaymentID = &paymentID
	entry.BookingID = &bookingID
	breakdown := paymentRec.Breakdown
	entry.ServerBreakdown = &breakdown
	entry.Security = sec

	if err := r.auditRepo.Append(ctx, r.db, entry); err != nil {
		slog.Warn("failed to record refund audit entry", "error", err)
		return
	}
	if err := r.auditRepo.MarkProcessed(ctx, r.db, entry.ID, audit.ProcessingCompleted, 0); err != nil {
		slog.Warn("failed to close refund audit entry", "error", err)
	}
}

func normalizeType(typ string) refund.Type {
	if typ == "" {
		return refund.TypeStandard
	}
	return refund.Type(typ)
}
