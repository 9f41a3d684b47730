//go:build unit

package booking_test

import (
	"testing"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/domain/catalog"
	"booking-flow/internal/domain/slot"
	"booking-flow/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPriceCalculator(t *testing.T) {
	pc := booking.NewDefaultPriceCalculator()
	svc, err := catalog.NewService(catalog.ServiceAttrs{ID: 2, Name: "Swedish Relaxation Massage", PriceCents: 8500})
	require.NoError(t, err)

	slotAt := func(cents int64) *slot.TimeSlot {
		s, err := slot.NewTimeSlot("10:00", true, money.New(cents))
		require.NoError(t, err)
		return &s
	}

	cases := []struct {
		name     string
		service  *catalog.Service
		timeSlot *slot.TimeSlot
		subtotal string
		tax      string
		total    string
	}{
		{name: "slot price wins", service: svc, timeSlot: slotAt(12000), subtotal: "120.00", tax: "9.60", total: "132.59"},
		{name: "service price without slot", service: svc, subtotal: "85.00", tax: "6.80", total: "94.79"},
		{name: "zero priced slot falls back to service", service: svc, timeSlot: slotAt(0), subtotal: "85.00", tax: "6.80", total: "94.79"},
		{name: "default slot price", service: svc, timeSlot: slotAt(7500), subtotal: "75.00", tax: "6.00", total: "83.99"},
		{name: "tax rounds to the nearest cent", timeSlot: slotAt(10007), subtotal: "100.07", tax: "8.01", total: "111.07"},
		{name: "nothing selected", subtotal: "0.00", tax: "0.00", total: "2.99"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := pc.Calculate(c.service, c.timeSlot)
			assert.Equal(t, c.subtotal, got.Subtotal.String())
			assert.Equal(t, c.tax, got.Tax.String())
			assert.Equal(t, "2.99", got.PlatformFee.String())
			assert.Equal(t, c.total, got.Total.String())
		})
	}
}
