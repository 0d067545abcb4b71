package response

import (
	"encoding/json"
	"time"

	"staybilling/internal/domain/payment"
	"staybilling/internal/usecase/commands"
	"staybilling/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PaymentResponse struct {
	ID           uuid.UUID         `json:"id"`
	BookingID    uuid.UUID         `json:"bookingId"`
	Amount       float64           `json:"amount"`
	Breakdown    BreakdownResponse `json:"breakdown"`
	PlatformFee  float64           `json:"platformFee"`
	HostEarning  float64           `json:"hostEarning"`
	PayoutStatus string            `json:"payoutStatus"`
	RefundFlag   string            `json:"refundFlag"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

func FromPaymentRecord(rec *payment.Record) *PaymentResponse {
	return &PaymentResponse{
		ID:           rec.ID,
		BookingID:    rec.BookingID,
		Amount:       rec.Amount.Dollars(),
		Breakdown:    FromBreakdown(rec.Breakdown),
		PlatformFee:  rec.PlatformFee.Dollars(),
		HostEarning:  rec.HostEarning.Dollars(),
		PayoutStatus: string(rec.Payout.Status),
		RefundFlag:   string(rec.RefundFlag),
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

type CreatePaymentResponse struct {
	Payment     *PaymentResponse          `json:"payment"`
	Consistency payment.ConsistencyResult `json:"consistency"`
	Rate        RateProvenanceResponse    `json:"rate"`
}

func FromCreatePaymentResult(res *commands.CreatePaymentResult) *CreatePaymentResponse {
	return &CreatePaymentResponse{
		Payment:     FromPaymentRecord(res.Payment),
		Consistency: res.Consistency,
		Rate:        fromProvenance(res.Rate),
	}
}

// PaymentViewResponse mirrors the read model one to one; copier does
// the field mapping.
type PaymentViewResponse struct {
	ID           uuid.UUID       `json:"id"`
	BookingID    uuid.UUID       `json:"bookingId"`
	AmountCents  int64           `json:"amountCents"`
	Breakdown    json.RawMessage `json:"breakdown"`
	PayoutStatus string          `json:"payoutStatus"`
	RefundFlag   string          `json:"refundFlag"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func FromPaymentView(v *queries.PaymentView) (*PaymentViewResponse, error) {
	var resp PaymentViewResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}
