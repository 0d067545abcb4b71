//go:build unit

package refund_test

import (
	"testing"
	"time"

	"staybilling/internal/domain/pricing"
	"staybilling/internal/domain/refund"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedBreakdown(t *testing.T) pricing.Breakdown {
	t.Helper()
	engine := pricing.NewEngine(pricing.DefaultFeeSchedule())
	b, err := engine.Calculate(pricing.Params{
		Mode:            pricing.ModeDaily,
		Currency:        "INR",
		BasePrice:       pricing.NewMoney(200000),
		Nights:          3,
		CleaningFee:     pricing.NewMoney(30000),
		ServiceFee:      pricing.NewMoney(10000),
		SecurityDeposit: pricing.NewMoney(50000),
	}, 0.15)
	require.NoError(t, err)
	return b
}

func guestCancellation(policy refund.Policy, untilCheckIn time.Duration) refund.Input {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return refund.Input{
		BookingConfirmed: true,
		Reason:           refund.ReasonGuestCancelled,
		Type:             refund.TypeStandard,
		Policy:           policy,
		CheckIn:          now.Add(untilCheckIn),
		Now:              now,
	}
}

func breakdownSum(rb refund.Breakdown) int64 {
	return rb.BaseAmount.
		Add(rb.ExtraGuestCost).
		Add(rb.ExtensionCost).
		Add(rb.CleaningFee).
		Add(rb.ServiceFee).
		Add(rb.SecurityDeposit).
		Sub(rb.Discount).
		Add(rb.PlatformFee).
		Add(rb.GST).
		Add(rb.ProcessingFee).Cents()
}

func TestCalculateScenarioPrecedence(t *testing.T) {
	b := storedBreakdown(t)

	t.Run("pending booking refunds in full whoever cancels", func(t *testing.T) {
		for _, byHost := range []bool{true, false} {
			in := guestCancellation(refund.PolicySuperStrict, 10*time.Hour)
			in.BookingConfirmed = false
			in.CancelledByHost = byHost

			res, err := refund.Calculate(b, in)
			require.NoError(t, err)
			assert.Equal(t, refund.ScenarioPendingCancellation, res.Scenario)
			assert.Equal(t, b.TotalAmount.Cents(), res.Breakdown.Amount.Cents())
		}
	})

	t.Run("deposit-only request refunds exactly the stored deposit", func(t *testing.T) {
		in := guestCancellation(refund.PolicyStrict, time.Hour)
		in.Type = refund.TypeSecurityDeposit

		res, err := refund.Calculate(b, in)
		require.NoError(t, err)
		assert.Equal(t, refund.ScenarioDepositOnly, res.Scenario)
		assert.Equal(t, int64(50000), res.Breakdown.Amount.Cents())
		assert.Equal(t, int64(0), res.Breakdown.BaseAmount.Cents())
	})

	t.Run("host cancelling a confirmed booking refunds in full", func(t *testing.T) {
		in := guestCancellation(refund.PolicySuperStrict, time.Hour)
		in.CancelledByHost = true
		in.Reason = refund.ReasonHostCancelled

		res, err := refund.Calculate(b, in)
		require.NoError(t, err)
		assert.Equal(t, refund.ScenarioHostCancellation, res.Scenario)
		assert.Equal(t, b.TotalAmount.Cents(), res.Breakdown.Amount.Cents())
	})

	t.Run("service issue and dispute refund in full regardless of policy", func(t *testing.T) {
		for _, reason := range []refund.Reason{refund.ReasonServiceIssue, refund.ReasonDispute} {
			in := guestCancellation(refund.PolicySuperStrict, time.Hour)
			in.Reason = reason

			res, err := refund.Calculate(b, in)
			require.NoError(t, err)
			assert.Equal(t, refund.ScenarioServiceIssue, res.Scenario)
			assert.Equal(t, b.TotalAmount.Cents(), res.Breakdown.Amount.Cents())
		}
	})

	t.Run("anything else refunds nothing", func(t *testing.T) {
		in := guestCancellation(refund.PolicyFlexible, 48*time.Hour)
		in.Reason = refund.ReasonOther

		res, err := refund.Calculate(b, in)
		require.NoError(t, err)
		assert.Equal(t, refund.ScenarioNoRefund, res.Scenario)
		assert.Equal(t, int64(0), res.Breakdown.Amount.Cents())
	})

	t.Run("unknown policy rejected", func(t *testing.T) {
		in := guestCancellation("lenient", 48*time.Hour)
		_, err := refund.Calculate(b, in)
		assert.ErrorIs(t, err, refund.ErrInvalidPolicy)
	})
}

func TestCalculatePolicyProration(t *testing.T) {
	b := storedBreakdown(t)

	t.Run("flexible refunds the full refundable amount above 24h", func(t *testing.T) {
		res, err := refund.Calculate(b, guestCancellation(refund.PolicyFlexible, 30*time.Hour))
		require.NoError(t, err)

		assert.Equal(t, refund.ScenarioPolicyProration, res.Scenario)
		// Refundable amount excludes platform fee, processing fee and GST.
		assert.Equal(t, b.CustomerSubtotal.Cents(), res.Breakdown.Amount.Cents())
		assert.Equal(t, int64(0), res.Breakdown.PlatformFee.Cents())
		assert.Equal(t, int64(0), res.Breakdown.GST.Cents())
		assert.Equal(t, int64(0), res.Breakdown.ProcessingFee.Cents())
	})

	t.Run("flexible refunds nothing inside 24h", func(t *testing.T) {
		res, err := refund.Calculate(b, guestCancellation(refund.PolicyFlexible, 10*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.Breakdown.Amount.Cents())
	})

	t.Run("strict refunds half above seven days", func(t *testing.T) {
		res, err := refund.Calculate(b, guestCancellation(refund.PolicyStrict, 8*24*time.Hour))
		require.NoError(t, err)

		// Refundable amount 6900.00 halves to 3450.00.
		assert.Equal(t, 0.5, res.Share)
		assert.Equal(t, int64(345000), res.Breakdown.Amount.Cents())
		assert.Equal(t, int64(0), res.Breakdown.PlatformFee.Cents())
	})

	t.Run("strict refunds nothing below seven days", func(t *testing.T) {
		res, err := refund.Calculate(b, guestCancellation(refund.PolicyStrict, 6*24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.Breakdown.Amount.Cents())
	})

	t.Run("moderate threshold sits at five days", func(t *testing.T) {
		full, err := refund.Calculate(b, guestCancellation(refund.PolicyModerate, 5*24*time.Hour+time.Minute))
		require.NoError(t, err)
		assert.Equal(t, b.CustomerSubtotal.Cents(), full.Breakdown.Amount.Cents())

		none, err := refund.Calculate(b, guestCancellation(refund.PolicyModerate, 5*24*time.Hour-time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(0), none.Breakdown.Amount.Cents())
	})

	t.Run("super strict never refunds", func(t *testing.T) {
		res, err := refund.Calculate(b, guestCancellation(refund.PolicySuperStrict, 365*24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.Breakdown.Amount.Cents())
	})
}

func TestCalculateBreakdownInvariants(t *testing.T) {
	engine := pricing.NewEngine(pricing.DefaultFeeSchedule())
	b, err := engine.Calculate(pricing.Params{
		Mode:            pricing.ModeDaily,
		Currency:        "INR",
		BasePrice:       pricing.NewMoney(99999),
		Nights:          5,
		ExtraGuests:     1,
		ExtraGuestPrice: pricing.NewMoney(3333),
		CleaningFee:     pricing.NewMoney(12501),
		ServiceFee:      pricing.NewMoney(7777),
		SecurityDeposit: pricing.NewMoney(25000),
		ExtensionHours:  6,
		Discount:        pricing.NewMoney(11111),
	}, 0.13)
	require.NoError(t, err)

	inputs := []refund.Input{
		guestCancellation(refund.PolicyStrict, 8*24*time.Hour),
		guestCancellation(refund.PolicyFlexible, 30*time.Hour),
		{BookingConfirmed: false, Reason: refund.ReasonGuestCancelled, Type: refund.TypeStandard, Policy: refund.PolicyModerate, CheckIn: time.Now().Add(time.Hour), Now: time.Now()},
	}

	for _, in := range inputs {
		res, err := refund.Calculate(b, in)
		require.NoError(t, err)

		assert.LessOrEqual(t, res.Breakdown.Amount.Cents(), b.TotalAmount.Cents(),
			"refund must never exceed the original total")
		assert.Equal(t, res.Breakdown.Amount.Cents(), breakdownSum(res.Breakdown),
			"breakdown fields must sum exactly to the refund amount")
	}
}

func TestBreakdownCapAt(t *testing.T) {
	b := storedBreakdown(t)

	t.Run("cap below the computed amount absorbs the cut from the base", func(t *testing.T) {
		full, err := refund.Calculate(b, refund.Input{
			BookingConfirmed: true,
			CancelledByHost:  true,
			Reason:           refund.ReasonHostCancelled,
			Type:             refund.TypeStandard,
			Policy:           refund.PolicyFlexible,
			CheckIn:          time.Now().Add(48 * time.Hour),
			Now:              time.Now(),
		})
		require.NoError(t, err)

		remaining := b.TotalAmount.Sub(pricing.NewMoney(50000))
		capped := full.Breakdown.CapAt(remaining)

		assert.Equal(t, remaining.Cents(), capped.Amount.Cents())
		assert.Equal(t, full.Breakdown.BaseAmount.Cents()-50000, capped.BaseAmount.Cents())
		assert.Equal(t, capped.Amount.Cents(), breakdownSum(capped))
	})

	t.Run("cut larger than the base cascades to the next components", func(t *testing.T) {
		full, err := refund.Calculate(b, refund.Input{
			BookingConfirmed: false,
			Reason:           refund.ReasonGuestCancelled,
			Type:             refund.TypeStandard,
			Policy:           refund.PolicyFlexible,
			CheckIn:          time.Now().Add(time.Hour),
			Now:              time.Now(),
		})
		require.NoError(t, err)

		capped := full.Breakdown.CapAt(pricing.NewMoney(10000))

		assert.Equal(t, int64(10000), capped.Amount.Cents())
		assert.Equal(t, int64(0), capped.BaseAmount.Cents())
		assert.Equal(t, capped.Amount.Cents(), breakdownSum(capped))
	})

	t.Run("cap at or above the amount changes nothing", func(t *testing.T) {
		res, err := refund.Calculate(b, guestCancellation(refund.PolicyFlexible, 48*time.Hour))
		require.NoError(t, err)

		same := res.Breakdown.CapAt(b.TotalAmount)
		assert.Equal(t, res.Breakdown.Amount.Cents(), same.Amount.Cents())
		assert.Equal(t, res.Breakdown.BaseAmount.Cents(), same.BaseAmount.Cents())
	})

	t.Run("negative remainder caps to zero", func(t *testing.T) {
		res, err := refund.Calculate(b, guestCancellation(refund.PolicyFlexible, 48*time.Hour))
		require.NoError(t, err)

		capped := res.Breakdown.CapAt(pricing.NewMoney(-100))
		assert.Equal(t, int64(0), capped.Amount.Cents())
		assert.Equal(t, int64(0), breakdownSum(capped))
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to refund.Status
		ok       bool
	}{
		{refund.StatusPending, refund.StatusApproved, true},
		{refund.StatusPending, refund.StatusRejected, true},
		{refund.StatusPending, refund.StatusCompleted, false},
		{refund.StatusApproved, refund.StatusProcessing, true},
		{refund.StatusApproved, refund.StatusRejected, false},
		{refund.StatusProcessing, refund.StatusCompleted, true},
		{refund.StatusRejected, refund.StatusApproved, false},
		{refund.StatusCompleted, refund.StatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}

	assert.True(t, refund.StatusRejected.IsTerminal())
	assert.True(t, refund.StatusCompleted.IsTerminal())
	assert.False(t, refund.StatusApproved.IsTerminal())
}
