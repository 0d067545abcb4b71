//go:build unit

package builder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The default stay is the reference scenario shared by the handler and
// e2e suites; its figures must not drift.
func TestPricingBuilderReferenceFigures(t *testing.T) {
	b := NewPricingBuilder().BuildBreakdown()

	require.InDelta(t, 6900.00, b.CustomerSubtotal.Dollars(), 0.001)
	require.InDelta(t, 960.00, b.PlatformFee.Dollars(), 0.001)
	require.InDelta(t, 1242.00, b.GST.Dollars(), 0.001)
	require.InDelta(t, 230.10, b.ProcessingFee.Dollars(), 0.001)
	require.InDelta(t, 9332.10, b.TotalAmount.Dollars(), 0.001)
	require.InDelta(t, 5440.00, b.HostEarning.Dollars(), 0.001)
}
