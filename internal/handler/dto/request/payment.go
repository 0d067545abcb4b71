package request

import (
	"staybilling/internal/domain/payment"

	"github.com/google/uuid"
)

// CreatePaymentRequest carries the client-computed figures alongside
// the booking reference. The figures are never trusted; the server
// recomputes and compares before any record is written.
type CreatePaymentRequest struct {
	BookingID     uuid.UUID `json:"booking_id" binding:"required"`
	Subtotal      float64   `json:"subtotal" binding:"required,gt=0"`
	PlatformFee   float64   `json:"platform_fee" binding:"min=0"`
	GST           float64   `json:"gst" binding:"min=0"`
	ProcessingFee float64   `json:"processing_fee" binding:"min=0"`
	TotalAmount   float64   `json:"total_amount" binding:"required,gt=0"`
}

func (r CreatePaymentRequest) ToClientBreakdown() payment.ClientBreakdown {
	return payment.ClientBreakdown{
		Subtotal:      r.Subtotal,
		PlatformFee:   r.PlatformFee,
		GST:           r.GST,
		ProcessingFee: r.ProcessingFee,
		TotalAmount:   r.TotalAmount,
	}
}
