package pricing

import "errors"

var (
	ErrInvalidDuration     = errors.New("duration must be positive")
	ErrNegativeAmount      = errors.New("monetary fields cannot be negative")
	ErrInvalidExtension    = errors.New("unsupported extension hours")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrInvalidRate         = errors.New("platform rate must be in [0,1)")
)

type Mode string

const (
	ModeDaily Mode = "daily"
	ModeDay24 Mode = "24_hour"
)

func (m Mode) IsValid() bool {
	return m == ModeDaily || m == ModeDay24
}

// Extension beyond the booked window is a closed enumeration, not a
// continuous function: only these block lengths are sold, each priced
// as a share of the base price. Anything else is rejected up front.
var extensionShare = map[int]float64{
	6:  0.30,
	12: 0.60,
	18: 0.75,
}

var supportedCurrencies = map[string]bool{
	"INR": true,
	"USD": true,
}

// Params carries everything the engine needs for one quote. BasePrice
// is per night in daily mode and per 24-hour block in 24-hour mode.
type Params struct {
	Mode            Mode
	Currency        string
	BasePrice       Money
	Nights          int
	ExtraGuests     int
	ExtraGuestPrice Money
	CleaningFee     Money
	ServiceFee      Money
	SecurityDeposit Money
	ExtensionHours  int
	Discount        Money
}

func (p Params) Validate() error {
	if !p.Mode.IsValid() {
		return ErrInvalidDuration
	}
	if p.Mode == ModeDaily && p.Nights <= 0 {
		return ErrInvalidDuration
	}
	if !supportedCurrencies[p.Currency] {
		return ErrUnsupportedCurrency
	}
	for _, m := range []Money{
		p.BasePrice, p.ExtraGuestPrice, p.CleaningFee,
		p.ServiceFee, p.SecurityDeposit, p.Discount,
	} {
		if m.IsNegative() {
			return ErrNegativeAmount
		}
	}
	if p.ExtraGuests < 0 {
		return ErrNegativeAmount
	}
	if p.ExtensionHours != 0 {
		if _, ok := extensionShare[p.ExtensionHours]; !ok {
			return ErrInvalidExtension
		}
	}
	return nil
}

// units returns the number of billable base units: nights in daily
// mode, exactly one 24-hour block otherwise.
func (p Params) units() int64 {
	if p.Mode == ModeDay24 {
		return 1
	}
	return int64(p.Nights)
}
