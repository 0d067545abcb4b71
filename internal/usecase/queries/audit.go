package queries

import (
	"context"

	"github.com/google/uuid"
)

type AuditQueries interface {
	// Trail returns every entry recorded for a payment, oldest first,
	// so the full calculation history reads top to bottom.
	Trail(ctx context.Context, paymentID uuid.UUID) ([]AuditEntryView, error)
	// ValidationFailures returns the most recent failed consistency
	// checks across all payments, for operator review.
	ValidationFailures(ctx context.Context, limit int) ([]AuditEntryView, error)
}

type AuditViewRepo interface {
	ListByPayment(ctx context.Context, paymentID uuid.UUID) ([]AuditEntryView, error)
	ListValidationFailures(ctx context.Context, limit int32) ([]AuditEntryView, error)
}

type auditQueriesImpl struct {
	repo AuditViewRepo
}

func NewAuditQueries(repo AuditViewRepo) AuditQueries {
	return &auditQueriesImpl{repo: repo}
}

func (q *auditQueriesImpl) Trail(ctx context.Context, paymentID uuid.UUID) ([]AuditEntryView, error) {
	return q.repo.ListByPayment(ctx, paymentID)
}

func (q *auditQueriesImpl) ValidationFailures(ctx context.Context, limit int) ([]AuditEntryView, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return q.repo.ListValidationFailures(ctx, int32(limit))
}
