package payment

import (
	"time"

	"staybilling/internal/domain/pricing"

	"github.com/google/uuid"
)

type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
	PayoutCompleted  PayoutStatus = "completed"
	PayoutFailed     PayoutStatus = "failed"
)

type RefundFlag string

const (
	RefundNone    RefundFlag = "none"
	RefundPartial RefundFlag = "partially_refunded"
	RefundFull    RefundFlag = "refunded"
)

// Payout is the host-side settlement sub-record embedded in a payment.
type Payout struct {
	Amount     pricing.Money
	Status     PayoutStatus
	ReleasedAt *time.Time
}

// Record is created once per successful transaction and thereafter
// mutated only by refund appends and payout status transitions.
type Record struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	Amount      pricing.Money
	Breakdown   pricing.Breakdown
	PlatformFee pricing.Money
	HostEarning pricing.Money
	Payout      Payout
	RefundFlag  RefundFlag
	Refunded    pricing.Money
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FlagForRefunded recomputes the payment's refund flag from the total
// refunded so far against the original charge.
func FlagForRefunded(refunded, total pricing.Money) RefundFlag {
	switch {
	case refunded.IsZero():
		return RefundNone
	case refunded.Cents() >= total.Cents():
		return RefundFull
	default:
		return RefundPartial
	}
}
