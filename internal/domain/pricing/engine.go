package pricing

// Default fee schedule. Rates resolved from the operator's standing
// configuration; overridable through env config at bootstrap.
const (
	DefaultGSTRate              = 0.18
	DefaultProcessingRate       = 0.029
	DefaultProcessingFixedCents = 3000
)

type FeeSchedule struct {
	GSTRate         float64
	ProcessingRate  float64
	ProcessingFixed Money
}

func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		GSTRate:         DefaultGSTRate,
		ProcessingRate:  DefaultProcessingRate,
		ProcessingFixed: NewMoney(DefaultProcessingFixedCents),
	}
}

// Breakdown is the reconciled three-way view of one booking transaction:
// what the customer pays, what the host earns, what the platform keeps.
// It is immutable for a given (Params, rate) pair.
type Breakdown struct {
	Mode       Mode
	Currency   string
	Nights     int
	TotalHours int
	Rate       float64

	// Components, kept separate so refunds can prorate selectively.
	BaseAmount      Money
	ExtraGuestCost  Money
	ExtensionCost   Money
	CleaningFee     Money
	ServiceFee      Money
	SecurityDeposit Money
	Discount        Money

	// Customer view.
	HostFeeSubtotal  Money
	HostSubtotal     Money
	CustomerSubtotal Money
	PlatformFee      Money
	GST              Money
	ProcessingFee    Money
	TotalAmount      Money

	// Host and platform views.
	HostEarning     Money
	PlatformRevenue Money
}

// Engine computes breakdowns. Pure and stateless: safe for any number
// of concurrent callers.
type Engine struct {
	fees FeeSchedule
}

func NewEngine(fees FeeSchedule) *Engine {
	return &Engine{fees: fees}
}

// Calculate maps (params, rate) to a breakdown. The security deposit is
// held, not earned: it raises the customer subtotal (and so GST and the
// processing fee) but is excluded from the commission base. Invoking
// twice with identical inputs yields identical output.
func (e *Engine) Calculate(p Params, rate float64) (Breakdown, error) {
	if err := p.Validate(); err != nil {
		return Breakdown{}, err
	}
	if rate < 0 || rate >= 1 {
		return Breakdown{}, ErrInvalidRate
	}

	units := p.units()
	baseAmount := p.BasePrice.MulInt(units)
	extraGuestCost := p.ExtraGuestPrice.MulInt(int64(p.ExtraGuests) * units)

	extensionCost := NewMoney(0)
	if p.ExtensionHours != 0 {
		extensionCost = p.BasePrice.MulRound(extensionShare[p.ExtensionHours])
	}

	hostFeeSubtotal := p.CleaningFee.Add(p.ServiceFee)

	preDiscount := baseAmount.Add(extraGuestCost).Add(extensionCost).Add(hostFeeSubtotal)
	// A fixed discount may not drive the host subtotal negative.
	discount := p.Discount.Min(preDiscount)

	hostSubtotal := preDiscount.Sub(discount)
	customerSubtotal := hostSubtotal.Add(p.SecurityDeposit)

	platformFee := hostSubtotal.MulRound(rate)
	gst := customerSubtotal.MulRound(e.fees.GSTRate)
	processingFee := customerSubtotal.MulRound(e.fees.ProcessingRate).Add(e.fees.ProcessingFixed)

	totalAmount := customerSubtotal.Add(platformFee).Add(gst).Add(processingFee)
	hostEarning := hostSubtotal.Sub(platformFee)
	platformRevenue := platformFee.Add(processingFee)

	totalHours := 0
	if p.Mode == ModeDay24 {
		totalHours = 24 + p.ExtensionHours
	}

	return Breakdown{
		Mode:             p.Mode,
		Currency:         p.Currency,
		Nights:           p.Nights,
		TotalHours:       totalHours,
		Rate:             rate,
		BaseAmount:       baseAmount,
		ExtraGuestCost:   extraGuestCost,
		ExtensionCost:    extensionCost,
		CleaningFee:      p.CleaningFee,
		ServiceFee:       p.ServiceFee,
		SecurityDeposit:  p.SecurityDeposit,
		Discount:         discount,
		HostFeeSubtotal:  hostFeeSubtotal,
		HostSubtotal:     hostSubtotal,
		CustomerSubtotal: customerSubtotal,
		PlatformFee:      platformFee,
		GST:              gst,
		ProcessingFee:    processingFee,
		TotalAmount:      totalAmount,
		HostEarning:      hostEarning,
		PlatformRevenue:  platformRevenue,
	}, nil
}
