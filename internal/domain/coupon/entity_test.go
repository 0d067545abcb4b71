//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"staybilling/internal/domain/coupon"
	"staybilling/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPercentageCoupon(t *testing.T, percent float64, maxDiscount *pricing.Money) *coupon.Coupon {
	t.Helper()
	c, err := coupon.NewCoupon(
		uuid.New(), "SPRING20", coupon.KindPercentage, percent,
		maxDiscount, 100, 0, nil, true, nil, nil,
	)
	require.NoError(t, err)
	return c
}

func TestDiscountFor(t *testing.T) {
	hostSubtotal := pricing.NewMoney(640000)

	t.Run("percentage discount on the host subtotal", func(t *testing.T) {
		c := newPercentageCoupon(t, 20, nil)
		assert.Equal(t, int64(128000), c.DiscountFor(hostSubtotal).Cents())
	})

	t.Run("percentage discount never exceeds the max cap", func(t *testing.T) {
		cap := pricing.NewMoney(50000)
		c := newPercentageCoupon(t, 20, &cap)
		assert.Equal(t, int64(50000), c.DiscountFor(hostSubtotal).Cents())
	})

	t.Run("fixed discount capped at the host subtotal", func(t *testing.T) {
		c, err := coupon.NewCoupon(
			uuid.New(), "FLAT10K", coupon.KindFixed, 10000,
			nil, 0, 0, nil, true, nil, nil,
		)
		require.NoError(t, err)
		assert.Equal(t, hostSubtotal.Cents(), c.DiscountFor(hostSubtotal).Cents())

		small := pricing.NewMoney(1000)
		assert.Equal(t, small.Cents(), c.DiscountFor(small).Cents())
	})
}

func TestValidateUsage(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	cases := []struct {
		name  string
		build func() (*coupon.Coupon, error)
		errIs error
	}{
		{
			name: "valid coupon accepted",
			build: func() (*coupon.Coupon, error) {
				return coupon.NewCoupon(uuid.New(), "OK", coupon.KindPercentage, 10, nil, 5, 2, nil, true, &past, &future)
			},
		},
		{
			name: "expired window rejected",
			build: func() (*coupon.Coupon, error) {
				earlier := now.Add(-time.Hour)
				return coupon.NewCoupon(uuid.New(), "OLD", coupon.KindPercentage, 10, nil, 5, 0, nil, true, &past, &earlier)
			},
			errIs: coupon.ErrCouponExpired,
		},
		{
			name: "not yet valid rejected",
			build: func() (*coupon.Coupon, error) {
				later := now.Add(time.Hour)
				return coupon.NewCoupon(uuid.New(), "SOON", coupon.KindPercentage, 10, nil, 5, 0, nil, true, &later, &future)
			},
			errIs: coupon.ErrCouponNotYetValid,
		},
		{
			name: "exhausted usage limit rejected",
			build: func() (*coupon.Coupon, error) {
				return coupon.NewCoupon(uuid.New(), "GONE", coupon.KindPercentage, 10, nil, 3, 3, nil, true, nil, nil)
			},
			errIs: coupon.ErrCouponExhausted,
		},
		{
			name: "repeat redemption by the same user rejected",
			build: func() (*coupon.Coupon, error) {
				return coupon.NewCoupon(uuid.New(), "ONCE", coupon.KindPercentage, 10, nil, 5, 1, []uuid.UUID{userID}, true, nil, nil)
			},
			errIs: coupon.ErrCouponAlreadyUsed,
		},
		{
			name: "inactive coupon rejected",
			build: func() (*coupon.Coupon, error) {
				return coupon.NewCoupon(uuid.New(), "OFF", coupon.KindPercentage, 10, nil, 5, 0, nil, false, nil, nil)
			},
			errIs: coupon.ErrCouponInactive,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := tc.build()
			require.NoError(t, err)
			err = c.ValidateUsage(now, userID)
			if tc.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestNewCouponValidation(t *testing.T) {
	_, err := coupon.NewCoupon(uuid.New(), "BAD", coupon.KindPercentage, 120, nil, 0, 0, nil, true, nil, nil)
	assert.ErrorIs(t, err, coupon.ErrInvalidDiscount)

	_, err = coupon.NewCoupon(uuid.New(), "BAD", coupon.KindFixed, -5, nil, 0, 0, nil, true, nil, nil)
	assert.ErrorIs(t, err, coupon.ErrInvalidDiscount)

	_, err = coupon.NewCoupon(uuid.New(), "BAD", "bogus", 10, nil, 0, 0, nil, true, nil, nil)
	assert.ErrorIs(t, err, coupon.ErrInvalidDiscount)
}
