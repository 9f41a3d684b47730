//go:build unit || e2e

package builder

import (
	"booking-flow/internal/domain/catalog"
	"booking-flow/internal/domain/slot"
	"booking-flow/internal/pkg/money"
)

type CatalogBuilder struct {
	Services  []catalog.ServiceAttrs
	Providers []catalog.ProviderAttrs
}

func NewCatalogBuilder() *CatalogBuilder {
	base := int64(12000)
	return &CatalogBuilder{
		Services: []catalog.ServiceAttrs{
			{ID: 1, Name: "Deep Tissue Massage", PriceCents: 12000, Duration: "90 minutes", Popular: true, Rating: 4.8},
			{ID: 2, Name: "Swedish Relaxation Massage", PriceCents: 8500, Duration: "60 minutes", Rating: 4.7},
		},
		Providers: []catalog.ProviderAttrs{
			{ID: 1, Name: "Sarah Johnson", Location: "Downtown Spa Center", Available: true, Rating: 4.9, BasePriceCents: &base},
			{ID: 2, Name: "Michael Chen", Location: "Athletic Recovery Center", Available: true, Rating: 4.8},
		},
	}
}

func (b *CatalogBuilder) With(mutate func(*CatalogBuilder)) *CatalogBuilder {
	mutate(b)
	return b
}

func (b *CatalogBuilder) Build() (*catalog.Catalog, error) {
	services := make([]*catalog.Service, 0, len(b.Services))
	for _, a := range b.Services {
		s, err := catalog.NewService(a)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	providers := make([]*catalog.Provider, 0, len(b.Providers))
	for _, a := range b.Providers {
		p, err := catalog.NewProvider(a)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return catalog.New(services, providers), nil
}

// CalendarBuilder produces a small fixed calendar: every date gets the listed
// times, all available unless marked booked.
type CalendarBuilder struct {
	ProviderID int
	Dates      []slot.DateKey
	Times      []string
	Booked     map[string]bool
	PriceCents int64
}

func NewCalendarBuilder() *CalendarBuilder {
	return &CalendarBuilder{
		ProviderID: 1,
		Dates:      []slot.DateKey{"2025-03-10", "2025-03-11", "2025-03-12"},
		Times:      []string{"09:00", "09:30", "10:00", "10:30"},
		Booked:     map[string]bool{"09:30": true},
		PriceCents: 12000,
	}
}

func (b *CalendarBuilder) With(mutate func(*CalendarBuilder)) *CalendarBuilder {
	mutate(b)
	return b
}

func (b *CalendarBuilder) Build() *slot.Calendar {
	days := make(map[slot.DateKey][]slot.TimeSlot, len(b.Dates))
	for _, d := range b.Dates {
		slots := make([]slot.TimeSlot, 0, len(b.Times))
		for _, hhmm := range b.Times {
			s, err := slot.NewTimeSlot(hhmm, !b.Booked[hhmm], money.New(b.PriceCents))
			if err != nil {
				panic(err)
			}
			slots = append(slots, s)
		}
		days[d] = slots
	}
	return slot.NewCalendar(b.ProviderID, b.Dates, days)
}
