package payment

import (
	"math"

	"staybilling/internal/domain/pricing"
)

// DefaultTolerance is the maximum per-field drift tolerated between a
// client-submitted breakdown and the server recomputation, in currency
// units. Client figures exist for UX responsiveness only; the server
// breakdown is the only one ever trusted to move money.
const DefaultTolerance = 0.01

// floatSlack absorbs binary representation noise so a difference of
// exactly the tolerance still validates.
const floatSlack = 1e-9

// ClientBreakdown is the untrusted figure set a client submits at
// payment time, in decimal currency units.
type ClientBreakdown struct {
	Subtotal      float64 `json:"subtotal"`
	PlatformFee   float64 `json:"platform_fee"`
	GST           float64 `json:"gst"`
	ProcessingFee float64 `json:"processing_fee"`
	TotalAmount   float64 `json:"total_amount"`
}

type FieldMismatch struct {
	Field  string  `json:"field"`
	Client float64 `json:"client"`
	Server float64 `json:"server"`
	Diff   float64 `json:"diff"`
}

type ConsistencyResult struct {
	IsValid    bool            `json:"is_valid"`
	Tolerance  float64         `json:"tolerance"`
	Mismatches []FieldMismatch `json:"mismatches,omitempty"`
}

// CheckConsistency compares the five money-bearing fields of a client
// breakdown against the authoritative server breakdown. Any field
// drifting beyond the tolerance marks the whole result invalid and
// must abort payment creation upstream.
func CheckConsistency(client ClientBreakdown, server pricing.Breakdown, tolerance float64) ConsistencyResult {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	fields := []struct {
		name           string
		client, server float64
	}{
		{"subtotal", client.Subtotal, server.CustomerSubtotal.Dollars()},
		{"platform_fee", client.PlatformFee, server.PlatformFee.Dollars()},
		{"gst", client.GST, server.GST.Dollars()},
		{"processing_fee", client.ProcessingFee, server.ProcessingFee.Dollars()},
		{"total_amount", client.TotalAmount, server.TotalAmount.Dollars()},
	}

	result := ConsistencyResult{IsValid: true, Tolerance: tolerance}
	for _, f := range fields {
		diff := math.Abs(f.client - f.server)
		if diff > tolerance+floatSlack {
			result.IsValid = false
			result.Mismatches = append(result.Mismatches, FieldMismatch{
				Field:  f.name,
				Client: f.client,
				Server: f.server,
				Diff:   diff,
			})
		}
	}
	return result
}
