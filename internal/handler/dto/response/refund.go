package response

import (
	"time"

	"staybilling/internal/domain/refund"

	"github.com/google/uuid"
)

type RefundBreakdownResponse struct {
	BaseAmount      float64 `json:"baseAmount"`
	ExtraGuestCost  float64 `json:"extraGuestCost"`
	ExtensionCost   float64 `json:"extensionCost"`
	CleaningFee     float64 `json:"cleaningFee"`
	ServiceFee      float64 `json:"serviceFee"`
	SecurityDeposit float64 `json:"securityDeposit"`
	Discount        float64 `json:"discount"`
	PlatformFee     float64 `json:"platformFee"`
	GST             float64 `json:"gst"`
	ProcessingFee   float64 `json:"processingFee"`
	Amount          float64 `json:"amount"`
}

func fromRefundBreakdown(b refund.Breakdown) RefundBreakdownResponse {
	return RefundBreakdownResponse{
		BaseAmount:      b.BaseAmount.Dollars(),
		ExtraGuestCost:  b.ExtraGuestCost.Dollars(),
		ExtensionCost:   b.ExtensionCost.Dollars(),
		CleaningFee:     b.CleaningFee.Dollars(),
		ServiceFee:      b.ServiceFee.Dollars(),
		SecurityDeposit: b.SecurityDeposit.Dollars(),
		Discount:        b.Discount.Dollars(),
		PlatformFee:     b.PlatformFee.Dollars(),
		GST:             b.GST.Dollars(),
		ProcessingFee:   b.ProcessingFee.Dollars(),
		Amount:          b.Amount.Dollars(),
	}
}

type RefundComputationResponse struct {
	Scenario  string                  `json:"scenario"`
	Share     float64                 `json:"share"`
	Breakdown RefundBreakdownResponse `json:"breakdown"`
}

func FromRefundResult(res *refund.Result) *RefundComputationResponse {
	return &RefundComputationResponse{
		Scenario:  string(res.Scenario),
		Share:     res.Share,
		Breakdown: fromRefundBreakdown(res.Breakdown),
	}
}

type RefundResponse struct {
	ID        uuid.UUID               `json:"id"`
	PaymentID uuid.UUID               `json:"paymentId"`
	BookingID uuid.UUID               `json:"bookingId"`
	Amount    float64                 `json:"amount"`
	Reason    string                  `json:"reason"`
	Type      string                  `json:"type"`
	Scenario  string                  `json:"scenario"`
	Breakdown RefundBreakdownResponse `json:"breakdown"`
	Status    string                  `json:"status"`
	Version   int                     `json:"version"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

func FromRefundRecord(rec *refund.Record) *RefundResponse {
	return &RefundResponse{
		ID:        rec.ID,
		PaymentID: rec.PaymentID,
		BookingID: rec.BookingID,
		Amount:    rec.Amount.Dollars(),
		Reason:    string(rec.Reason),
		Type:      string(rec.Type),
		Scenario:  string(rec.Scenario),
		Breakdown: fromRefundBreakdown(rec.Breakdown),
		Status:    string(rec.Status),
		Version:   rec.Version,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
