package booking

import (
	"booking-flow/internal/domain/catalog"
	"booking-flow/internal/domain/slot"
	"booking-flow/internal/pkg/money"
)

type Breakdown struct {
	Subtotal    money.Money
	Tax         money.Money
	PlatformFee money.Money
	Total       money.Money
}

type PriceCalculator interface {
	Calculate(service *catalog.Service, timeSlot *slot.TimeSlot) Breakdown
}

type DefaultPriceCalculator struct {
	TaxRatePercent   int64
	PlatformFeeCents int64
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		TaxRatePercent:   8,
		PlatformFeeCents: 299, // $2.99
	}
}

// Calculate prices the selected slot, falling back to the service price when
// no slot (or a zero-priced slot) is selected.
func (pc *DefaultPriceCalculator) Calculate(service *catalog.Service, timeSlot *slot.TimeSlot) Breakdown {
	var base money.Money
	switch {
	case timeSlot != nil && !timeSlot.Price().IsZero():
		base = timeSlot.Price()
	case service != nil:
		base = service.Price()
	}

	tax := base.Percent(pc.TaxRatePercent)
	fee := money.New(pc.PlatformFeeCents)
	return Breakdown{
		Subtotal:    base,
		Tax:         tax,
		PlatformFee: fee,
		Total:       base.Add(tax).Add(fee),
	}
}
