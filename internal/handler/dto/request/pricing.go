package request

import (
	"strings"

	"staybilling/internal/domain/pricing"
)

// PricingParamsRequest mirrors pricing.Params with decimal currency
// amounts; binding validation rejects the obvious garbage before the
// domain layer re-validates.
type PricingParamsRequest struct {
	Mode            string  `json:"mode" binding:"required,oneof=daily 24_hour"`
	Currency        string  `json:"currency" binding:"required,len=3"`
	BasePrice       float64 `json:"base_price" binding:"required,gt=0"`
	Nights          int     `json:"nights" binding:"omitempty,min=1"`
	ExtraGuests     int     `json:"extra_guests" binding:"omitempty,min=0"`
	ExtraGuestPrice float64 `json:"extra_guest_price" binding:"omitempty,min=0"`
	CleaningFee     float64 `json:"cleaning_fee" binding:"omitempty,min=0"`
	ServiceFee      float64 `json:"service_fee" binding:"omitempty,min=0"`
	SecurityDeposit float64 `json:"security_deposit" binding:"omitempty,min=0"`
	ExtensionHours  int     `json:"extension_hours" binding:"omitempty,oneof=6 12 18"`
}

func (r PricingParamsRequest) ToDomain() pricing.Params {
	return pricing.Params{
		Mode:            pricing.Mode(r.Mode),
		Currency:        strings.ToUpper(strings.TrimSpace(r.Currency)),
		BasePrice:       pricing.FromDollars(r.BasePrice),
		Nights:          r.Nights,
		ExtraGuests:     r.ExtraGuests,
		ExtraGuestPrice: pricing.FromDollars(r.ExtraGuestPrice),
		CleaningFee:     pricing.FromDollars(r.CleaningFee),
		ServiceFee:      pricing.FromDollars(r.ServiceFee),
		SecurityDeposit: pricing.FromDollars(r.SecurityDeposit),
		ExtensionHours:  r.ExtensionHours,
	}
}

type QuoteRequest struct {
	Params     PricingParamsRequest `json:"params" binding:"required"`
	CouponCode *string              `json:"coupon_code,omitempty"`
}

func (r QuoteRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
