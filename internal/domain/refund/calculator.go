package refund

import (
	"errors"
	"time"

	"staybilling/internal/domain/pricing"
)

var (
	ErrInvalidPolicy   = errors.New("unknown cancellation policy")
	ErrNothingToRefund = errors.New("scenario yields no refund")
)

type Reason string

const (
	ReasonGuestCancelled Reason = "guest_cancelled"
	ReasonHostCancelled  Reason = "host_cancelled"
	ReasonServiceIssue   Reason = "service_issue"
	ReasonDispute        Reason = "dispute"
	ReasonOther          Reason = "other"
)

type Type string

const (
	TypeStandard        Type = "standard"
	TypeSecurityDeposit Type = "security_deposit"
)

type Scenario string

const (
	ScenarioPendingCancellation Scenario = "pending_cancellation"
	ScenarioDepositOnly         Scenario = "deposit_only"
	ScenarioPolicyProration     Scenario = "policy_proration"
	ScenarioHostCancellation    Scenario = "host_cancellation"
	ScenarioServiceIssue        Scenario = "service_issue"
	ScenarioNoRefund            Scenario = "no_refund"
)

// Input describes one cancellation against a stored booking breakdown.
type Input struct {
	BookingConfirmed bool
	CancelledByHost  bool
	Reason           Reason
	Type             Type
	Policy           Policy
	CheckIn          time.Time
	Now              time.Time
}

// Breakdown lists the refunded slice of each component. Fields the
// active scenario excludes are zeroed, so the populated fields always
// sum exactly to Amount.
type Breakdown struct {
	BaseAmount      pricing.Money
	ExtraGuestCost  pricing.Money
	ExtensionCost   pricing.Money
	CleaningFee     pricing.Money
	ServiceFee      pricing.Money
	SecurityDeposit pricing.Money
	Discount        pricing.Money // refunded share of the applied discount, negative contribution
	PlatformFee     pricing.Money
	GST             pricing.Money
	ProcessingFee   pricing.Money
	Amount          pricing.Money
}

type Result struct {
	Scenario  Scenario
	Share     float64
	Breakdown Breakdown
}

// Calculate derives the refund for a cancellation. Scenario precedence,
// first match wins:
//  1. either party cancels while the booking is still pending: full refund
//  2. security-deposit-only request: exactly the stored deposit
//  3. guest cancels a confirmed booking: policy proration over the
//     refundable amount, which excludes platform fee, processing fee
//     and GST
//  4. host cancels a confirmed booking: full refund
//  5. service issue or dispute: full refund
//  6. otherwise: zero
func Calculate(b pricing.Breakdown, in Input) (Result, error) {
	if !in.Policy.IsValid() {
		return Result{}, ErrInvalidPolicy
	}

	if !in.BookingConfirmed {
		return fullRefund(b, ScenarioPendingCancellation), nil
	}

	if in.Type == TypeSecurityDeposit {
		return Result{
			Scenario: ScenarioDepositOnly,
			Share:    1.0,
			Breakdown: Breakdown{
				SecurityDeposit: b.SecurityDeposit,
				Amount:          b.SecurityDeposit,
			},
		}, nil
	}

	if !in.CancelledByHost && in.Reason == ReasonGuestCancelled {
		share := in.Policy.RefundShare(in.CheckIn.Sub(in.Now))
		return prorated(b, share), nil
	}

	if in.CancelledByHost {
		return fullRefund(b, ScenarioHostCancellation), nil
	}

	if in.Reason == ReasonServiceIssue || in.Reason == ReasonDispute {
		return fullRefund(b, ScenarioServiceIssue), nil
	}

	return Result{Scenario: ScenarioNoRefund}, nil
}

// fullRefund returns everything the customer paid, fee fields included.
func fullRefund(b pricing.Breakdown, s Scenario) Result {
	return Result{
		Scenario: s,
		Share:    1.0,
		Breakdown: Breakdown{
			BaseAmount:      b.BaseAmount,
			ExtraGuestCost:  b.ExtraGuestCost,
			ExtensionCost:   b.ExtensionCost,
			CleaningFee:     b.CleaningFee,
			ServiceFee:      b.ServiceFee,
			SecurityDeposit: b.SecurityDeposit,
			Discount:        b.Discount,
			PlatformFee:     b.PlatformFee,
			GST:             b.GST,
			ProcessingFee:   b.ProcessingFee,
			Amount:          b.TotalAmount,
		},
	}
}

// prorated applies the policy share to the refundable components only.
// Platform fee, processing fee and GST are never returned on
// policy-driven cancellations. Each component is rounded independently
// and the amount is their exact sum.
func prorated(b pricing.Breakdown, share float64) Result {
	rb := Breakdown{
		BaseAmount:      b.BaseAmount.MulRound(share),
		ExtraGuestCost:  b.ExtraGuestCost.MulRound(share),
		ExtensionCost:   b.ExtensionCost.MulRound(share),
		CleaningFee:     b.CleaningFee.MulRound(share),
		ServiceFee:      b.ServiceFee.MulRound(share),
		SecurityDeposit: b.SecurityDeposit.MulRound(share),
		Discount:        b.Discount.MulRound(share),
	}
	rb.Amount = rb.BaseAmount.
		Add(rb.ExtraGuestCost).
		Add(rb.ExtensionCost).
		Add(rb.CleaningFee).
		Add(rb.ServiceFee).
		Add(rb.SecurityDeposit).
		Sub(rb.Discount)

	return Result{
		Scenario:  ScenarioPolicyProration,
		Share:     share,
		Breakdown: rb,
	}
}

// CapAt lowers the refund so that, together with what was already
// refunded, it never exceeds the original charge. The cut is absorbed
// component by component starting from the base amount, keeping the
// populated fields summing exactly to Amount.
func (b Breakdown) CapAt(limit pricing.Money) Breakdown {
	if limit.IsNegative() {
		limit = pricing.Money{}
	}
	excess := b.Amount.Sub(limit)
	if excess.Cents() <= 0 {
		return b
	}
	components := []*pricing.Money{
		&b.BaseAmount,
		&b.ExtraGuestCost,
		&b.ExtensionCost,
		&b.CleaningFee,
		&b.ServiceFee,
		&b.SecurityDeposit,
		&b.PlatformFee,
		&b.GST,
		&b.ProcessingFee,
	}
	for _, c := range components {
		if excess.IsZero() {
			break
		}
		cut := c.Min(excess)
		*c = c.Sub(cut)
		excess = excess.Sub(cut)
	}
	b.Amount = limit
	return b
}
