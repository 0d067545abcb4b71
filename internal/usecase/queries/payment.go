package queries

import (
	"context"

	"github.com/google/uuid"
)

type PaymentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*PaymentView, error)
}

type PaymentViewRepo interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	FindViewByBookingID(ctx context.Context, bookingID uuid.UUID) (*PaymentView, error)
}

type paymentQueriesImpl struct {
	repo PaymentViewRepo
}

func NewPaymentQueries(repo PaymentViewRepo) PaymentQueries {
	return &paymentQueriesImpl{repo: repo}
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error) {
	return q.repo.FindViewByID(ctx, id)
}

func (q *paymentQueriesImpl) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*PaymentView, error) {
	return q.repo.FindViewByBookingID(ctx, bookingID)
}
