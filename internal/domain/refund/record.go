package refund

import (
	"time"

	"staybilling/internal/domain/pricing"

	"github.com/google/uuid"
)

// Record is one refund request against a payment. Status transitions
// are single-writer: the storage layer guards them with an optimistic
// version check.
type Record struct {
	ID        uuid.UUID
	PaymentID uuid.UUID
	BookingID uuid.UUID
	Amount    pricing.Money
	Reason    Reason
	Type      Type
	Scenario  Scenario
	Breakdown Breakdown
	Status    Status
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewRecord(paymentID, bookingID uuid.UUID, res Result, reason Reason, typ Type) *Record {
	return &Record{
		ID:        uuid.New(),
		PaymentID: paymentID,
		BookingID: bookingID,
		Amount:    res.Breakdown.Amount,
		Reason:    reason,
		Type:      typ,
		Scenario:  res.Scenario,
		Breakdown: res.Breakdown,
		Status:    StatusPending,
		Version:   1,
	}
}
