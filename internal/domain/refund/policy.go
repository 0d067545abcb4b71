package refund

import "time"

type Policy string

const (
	PolicyFlexible    Policy = "flexible"
	PolicyModerate    Policy = "moderate"
	PolicyStrict      Policy = "strict"
	PolicySuperStrict Policy = "super_strict"
)

func (p Policy) IsValid() bool {
	switch p {
	case PolicyFlexible, PolicyModerate, PolicyStrict, PolicySuperStrict:
		return true
	default:
		return false
	}
}

// RefundShare returns the fraction of the refundable amount returned
// when a guest cancels a confirmed booking with this much time left
// before check-in. Single-band policies: full above the threshold,
// nothing below it. super_strict never refunds.
func (p Policy) RefundShare(untilCheckIn time.Duration) float64 {
	switch p {
	case PolicyFlexible:
		if untilCheckIn > 24*time.Hour {
			return 1.0
		}
	case PolicyModerate:
		if untilCheckIn > 5*24*time.Hour {
			return 1.0
		}
	case PolicyStrict:
		if untilCheckIn > 7*24*time.Hour {
			return 0.5
		}
	case PolicySuperStrict:
		return 0
	}
	return 0
}
