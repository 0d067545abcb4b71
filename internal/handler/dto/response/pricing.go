package response

import (
	"staybilling/internal/domain/pricing"
	"staybilling/internal/domain/rate"
	"staybilling/internal/usecase/commands"

	"github.com/google/uuid"
)

// BreakdownResponse carries every figure in decimal currency units,
// matching what clients display. Cent-exact values stay server-side.
type BreakdownResponse struct {
	Mode       string  `json:"mode"`
	Currency   string  `json:"currency"`
	Nights     int     `json:"nights,omitempty"`
	TotalHours int     `json:"totalHours,omitempty"`
	Rate       float64 `json:"rate"`

	BaseAmount      float64 `json:"baseAmount"`
	ExtraGuestCost  float64 `json:"extraGuestCost"`
	ExtensionCost   float64 `json:"extensionCost"`
	CleaningFee     float64 `json:"cleaningFee"`
	ServiceFee      float64 `json:"serviceFee"`
	SecurityDeposit float64 `json:"securityDeposit"`
	Discount        float64 `json:"discount"`

	Subtotal      float64 `json:"subtotal"`
	PlatformFee   float64 `json:"platformFee"`
	GST           float64 `json:"gst"`
	ProcessingFee float64 `json:"processingFee"`
	TotalAmount   float64 `json:"totalAmount"`

	HostEarning     float64 `json:"hostEarning"`
	PlatformRevenue float64 `json:"platformRevenue"`
}

func FromBreakdown(b pricing.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Mode:            string(b.Mode),
		Currency:        b.Currency,
		Nights:          b.Nights,
		TotalHours:      b.TotalHours,
		Rate:            b.Rate,
		BaseAmount:      b.BaseAmount.Dollars(),
		ExtraGuestCost:  b.ExtraGuestCost.Dollars(),
		ExtensionCost:   b.ExtensionCost.Dollars(),
		CleaningFee:     b.CleaningFee.Dollars(),
		ServiceFee:      b.ServiceFee.Dollars(),
		SecurityDeposit: b.SecurityDeposit.Dollars(),
		Discount:        b.Discount.Dollars(),
		Subtotal:        b.CustomerSubtotal.Dollars(),
		PlatformFee:     b.PlatformFee.Dollars(),
		GST:             b.GST.Dollars(),
		ProcessingFee:   b.ProcessingFee.Dollars(),
		TotalAmount:     b.TotalAmount.Dollars(),
		HostEarning:     b.HostEarning.Dollars(),
		PlatformRevenue: b.PlatformRevenue.Dollars(),
	}
}

type RateProvenanceResponse struct {
	RecordID *uuid.UUID `json:"recordId,omitempty"`
	Rate     float64    `json:"rate"`
	Version  int        `json:"version"`
	Fallback bool       `json:"fallback"`
}

func fromProvenance(p rate.Provenance) RateProvenanceResponse {
	return RateProvenanceResponse{
		RecordID: p.RecordID,
		Rate:     p.Rate,
		Version:  p.Version,
		Fallback: p.Fallback,
	}
}

type AppliedCouponResponse struct {
	ID       uuid.UUID `json:"id"`
	Code     string    `json:"code"`
	Discount float64   `json:"discount"`
}

type QuoteResponse struct {
	Breakdown BreakdownResponse      `json:"breakdown"`
	Rate      RateProvenanceResponse `json:"rate"`
	Coupon    *AppliedCouponResponse `json:"coupon,omitempty"`
}

func FromQuoteResult(res *commands.QuoteResult) *QuoteResponse {
	resp := &QuoteResponse{
		Breakdown: FromBreakdown(res.Breakdown),
		Rate:      fromProvenance(res.Rate),
	}
	if res.Coupon != nil {
		resp.Coupon = &AppliedCouponResponse{
			ID:       res.Coupon.ID,
			Code:     res.Coupon.Code,
			Discount: res.Coupon.Discount.Dollars(),
		}
	}
	return resp
}
