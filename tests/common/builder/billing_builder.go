//go:build unit || e2e

package builder

import (
	"time"

	dompayment "staybilling/internal/domain/payment"
	"staybilling/internal/domain/pricing"
	"staybilling/internal/domain/rate"
	"staybilling/internal/domain/refund"
	reqdto "staybilling/internal/handler/dto/request"
	"staybilling/internal/usecase/commands"

	"github.com/google/uuid"
)

// PricingBuilder carries the reference three-night stay used across
// tests: 2000/night, cleaning 300, service 100, deposit 500,
// commission 15%. Figures land on subtotal 6900.00 / total 9332.10 /
// host earning 5440.00.
type PricingBuilder struct {
	Mode            string
	Currency        string
	BasePrice       float64
	Nights          int
	ExtraGuests     int
	ExtraGuestPrice float64
	CleaningFee     float64
	ServiceFee      float64
	SecurityDeposit float64
	ExtensionHours  int
	Rate            float64
}

func NewPricingBuilder() *PricingBuilder {
	return &PricingBuilder{
		Mode:            "daily",
		Currency:        "INR",
		BasePrice:       2000,
		Nights:          3,
		ExtraGuests:     0,
		ExtraGuestPrice: 400,
		CleaningFee:     300,
		ServiceFee:      100,
		SecurityDeposit: 500,
		Rate:            0.15,
	}
}

func (b *PricingBuilder) With(mutate func(*PricingBuilder)) *PricingBuilder {
	mutate(b)
	return b
}

func (b *PricingBuilder) BuildParamsRequestDTO() reqdto.PricingParamsRequest {
	return reqdto.PricingParamsRequest{
		Mode:            b.Mode,
		Currency:        b.Currency,
		BasePrice:       b.BasePrice,
		Nights:          b.Nights,
		ExtraGuests:     b.ExtraGuests,
		ExtraGuestPrice: b.ExtraGuestPrice,
		CleaningFee:     b.CleaningFee,
		ServiceFee:      b.ServiceFee,
		SecurityDeposit: b.SecurityDeposit,
		ExtensionHours:  b.ExtensionHours,
	}
}

func (b *PricingBuilder) BuildQuoteRequestDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{Params: b.BuildParamsRequestDTO()}
}

func (b *PricingBuilder) BuildParams() pricing.Params {
	return b.BuildParamsRequestDTO().ToDomain()
}

func (b *PricingBuilder) BuildBreakdown() pricing.Breakdown {
	engine := pricing.NewEngine(pricing.DefaultFeeSchedule())
	breakdown, err := engine.Calculate(b.BuildParams(), b.Rate)
	if err != nil {
		panic("builder produced invalid pricing params: " + err.Error())
	}
	return breakdown
}

func (b *PricingBuilder) BuildQuoteResult() *commands.QuoteResult {
	return &commands.QuoteResult{
		Breakdown: b.BuildBreakdown(),
		Rate:      rate.Provenance{Rate: b.Rate, Version: 1},
	}
}

type PaymentBuilder struct {
	PaymentID uuid.UUID
	BookingID uuid.UUID
	Pricing   *PricingBuilder
	CreatedAt time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		PaymentID: uuid.New(),
		BookingID: uuid.New(),
		Pricing:   NewPricingBuilder(),
		CreatedAt: time.Now(),
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

func (b *PaymentBuilder) BuildRecord() *dompayment.Record {
	breakdown := b.Pricing.BuildBreakdown()
	return &dompayment.Record{
		ID:          b.PaymentID,
		BookingID:   b.BookingID,
		Amount:      breakdown.TotalAmount,
		Breakdown:   breakdown,
		PlatformFee: breakdown.PlatformFee,
		HostEarning: breakdown.HostEarning,
		Payout: dompayment.Payout{
			Amount: breakdown.HostEarning,
			Status: dompayment.PayoutPending,
		},
		RefundFlag: dompayment.RefundNone,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.CreatedAt,
	}
}

// BuildCreateRequestDTO returns client figures matching the server
// computation exactly.
func (b *PaymentBuilder) BuildCreateRequestDTO() reqdto.CreatePaymentRequest {
	breakdown := b.Pricing.BuildBreakdown()
	return reqdto.CreatePaymentRequest{
		BookingID:     b.BookingID,
		Subtotal:      breakdown.CustomerSubtotal.Dollars(),
		PlatformFee:   breakdown.PlatformFee.Dollars(),
		GST:           breakdown.GST.Dollars(),
		ProcessingFee: breakdown.ProcessingFee.Dollars(),
		TotalAmount:   breakdown.TotalAmount.Dollars(),
	}
}

func (b *PaymentBuilder) BuildCreateResult() *commands.CreatePaymentResult {
	return &commands.CreatePaymentResult{
		Payment: b.BuildRecord(),
		Consistency: dompayment.ConsistencyResult{
			IsValid:   true,
			Tolerance: dompayment.DefaultTolerance,
		},
		Rate: rate.Provenance{Rate: b.Pricing.Rate, Version: 1},
	}
}

type RefundBuilder struct {
	RefundID  uuid.UUID
	Payment   *PaymentBuilder
	Reason    refund.Reason
	Type      refund.Type
	CreatedAt time.Time
}

func NewRefundBuilder() *RefundBuilder {
	return &RefundBuilder{
		RefundID:  uuid.New(),
		Payment:   NewPaymentBuilder(),
		Reason:    refund.ReasonHostCancelled,
		Type:      refund.TypeStandard,
		CreatedAt: time.Now(),
	}
}

func (b *RefundBuilder) With(mutate func(*RefundBuilder)) *RefundBuilder {
	mutate(b)
	return b
}

func (b *RefundBuilder) BuildResult() *refund.Result {
	breakdown := b.Payment.Pricing.BuildBreakdown()
	in := refund.Input{
		BookingConfirmed: true,
		CancelledByHost:  b.Reason == refund.ReasonHostCancelled,
		Reason:           b.Reason,
		Type:             b.Type,
		Policy:           refund.PolicyFlexible,
		CheckIn:          time.Now().Add(72 * time.Hour),
		Now:              time.Now(),
	}
	result, err := refund.Calculate(breakdown, in)
	if err != nil {
		panic("builder produced invalid refund input: " + err.Error())
	}
	return &result
}

func (b *RefundBuilder) BuildRecord() *refund.Record {
	rec := refund.NewRecord(b.Payment.PaymentID, b.Payment.BookingID, *b.BuildResult(), b.Reason, b.Type)
	rec.ID = b.RefundID
	rec.CreatedAt = b.CreatedAt
	rec.UpdatedAt = b.CreatedAt
	return rec
}

func (b *RefundBuilder) BuildCreateRequestDTO() reqdto.CreateRefundRequest {
	return reqdto.CreateRefundRequest{
		PaymentID: b.Payment.PaymentID,
		Reason:    string(b.Reason),
		Type:      string(b.Type),
	}
}
