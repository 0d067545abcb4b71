package coupon

import (
	"errors"
	"time"

	"staybilling/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponNotYetValid = errors.New("coupon is not yet valid")
	ErrCouponExhausted   = errors.New("coupon usage limit reached")
	ErrCouponAlreadyUsed = errors.New("coupon already used by this user")
	ErrCouponInactive    = errors.New("coupon is inactive")
	ErrInvalidDiscount   = errors.New("invalid discount definition")
)

type DiscountKind string

const (
	KindPercentage DiscountKind = "percentage"
	KindFixed      DiscountKind = "fixed"
)

type Coupon struct {
	id          uuid.UUID
	code        string
	kind        DiscountKind
	amount      float64 // percent for percentage kind, dollars for fixed
	maxDiscount *pricing.Money
	usageLimit  int
	usedCount   int
	usedBy      []uuid.UUID
	active      bool
	validFrom   *time.Time
	validTo     *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	kind DiscountKind,
	amount float64,
	maxDiscount *pricing.Money,
	usageLimit int,
	usedCount int,
	usedBy []uuid.UUID,
	active bool,
	validFrom, validTo *time.Time,
) (*Coupon, error) {
	switch kind {
	case KindPercentage:
		if amount <= 0 || amount > 100 {
			return nil, ErrInvalidDiscount
		}
	case KindFixed:
		if amount <= 0 {
			return nil, ErrInvalidDiscount
		}
	default:
		return nil, ErrInvalidDiscount
	}

	return &Coupon{
		id:          id,
		code:        code,
		kind:        kind,
		amount:      amount,
		maxDiscount: maxDiscount,
		usageLimit:  usageLimit,
		usedCount:   usedCount,
		usedBy:      usedBy,
		active:      active,
		validFrom:   validFrom,
		validTo:     validTo,
	}, nil
}

func (c *Coupon) IsValidAt(t time.Time) bool {
	if c.validFrom != nil && t.Before(*c.validFrom) {
		return false
	}
	if c.validTo != nil && t.After(*c.validTo) {
		return false
	}
	return true
}

// ValidateUsage checks every redemption precondition except the atomic
// counter increment, which only the storage layer can do safely.
func (c *Coupon) ValidateUsage(t time.Time, userID uuid.UUID) error {
	if !c.active {
		return ErrCouponInactive
	}
	if c.validFrom != nil && t.Before(*c.validFrom) {
		return ErrCouponNotYetValid
	}
	if !c.IsValidAt(t) {
		return ErrCouponExpired
	}
	if c.usageLimit > 0 && c.usedCount >= c.usageLimit {
		return ErrCouponExhausted
	}
	for _, u := range c.usedBy {
		if u == userID {
			return ErrCouponAlreadyUsed
		}
	}
	return nil
}

// DiscountFor computes the discount against the pre-deposit, pre-fee
// host subtotal. Percentage discounts honor the max cap; fixed
// discounts never exceed the subtotal itself.
func (c *Coupon) DiscountFor(hostSubtotal pricing.Money) pricing.Money {
	var discount pricing.Money
	switch c.kind {
	case KindPercentage:
		discount = hostSubtotal.MulRound(c.amount / 100.0)
		if c.maxDiscount != nil {
			discount = discount.Min(*c.maxDiscount)
		}
	case KindFixed:
		discount = pricing.FromDollars(c.amount)
	}
	return discount.Min(hostSubtotal)
}

func (c *Coupon) ID() uuid.UUID               { return c.id }
func (c *Coupon) Code() string                { return c.code }
func (c *Coupon) Kind() DiscountKind          { return c.kind }
func (c *Coupon) Amount() float64             { return c.amount }
func (c *Coupon) MaxDiscount() *pricing.Money { return c.maxDiscount }
func (c *Coupon) UsageLimit() int             { return c.usageLimit }
func (c *Coupon) UsedCount() int              { return c.usedCount }
func (c *Coupon) ValidFrom() *time.Time       { return c.validFrom }
func (c *Coupon) ValidTo() *time.Time         { return c.validTo }
func (c *Coupon) CreatedAt() time.Time        { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time        { return c.updatedAt }
