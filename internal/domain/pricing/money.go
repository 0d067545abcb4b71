package pricing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money is a fixed-point amount in minor units (cents). All engine
// arithmetic happens in cents so repeated recomputation stays exact.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyNonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

// FromDollars converts a decimal amount to cents, rounding half away
// from zero. Used only at the API boundary; internal math never leaves
// minor units.
func FromDollars(amount float64) Money {
	return Money{cents: int64(math.Round(amount * 100))}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) MulInt(n int64) Money {
	return Money{cents: m.cents * n}
}

// MulRound multiplies by a fractional rate and rounds half away from
// zero to the cent. Every intermediate figure in a breakdown is rounded
// independently through this method.
func (m Money) MulRound(rate float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * rate))}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) Min(other Money) Money {
	if other.cents < m.cents {
		return other
	}
	return m
}

// JSON form is the raw minor-unit count, so persisted snapshots stay
// exact and re-load without float parsing.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(m.cents, 10)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	cents, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	m.cents = cents
	return nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, abs64(m.cents%100))
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
