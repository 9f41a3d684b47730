//go:build unit

package slot_test

import (
	"testing"

	"booking-flow/internal/domain/slot"
	"booking-flow/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	open, err := slot.NewTimeSlot("10:00", true, money.New(12000))
	require.NoError(t, err)
	booked, err := slot.NewTimeSlot("10:30", false, money.New(12000))
	require.NoError(t, err)

	cases := []struct {
		name   string
		slot   slot.TimeSlot
		locked bool
		want   slot.Status
	}{
		{name: "available", slot: open, want: slot.StatusAvailable},
		{name: "locked wins over available", slot: open, locked: true, want: slot.StatusLocked},
		{name: "unavailable", slot: booked, want: slot.StatusUnavailable},
		{name: "locked wins over unavailable", slot: booked, locked: true, want: slot.StatusLocked},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := slot.StatusOf(c.slot, c.locked)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.want == slot.StatusAvailable, got.Selectable())
		})
	}
}

func TestParsing(t *testing.T) {
	t.Run("date key", func(t *testing.T) {
		d, err := slot.ParseDateKey("2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, "2025-03-10", d.String())

		_, err = slot.ParseDateKey("2025-3-10")
		assert.ErrorIs(t, err, slot.ErrInvalidDateKey)
		_, err = slot.ParseDateKey("2025-02-30")
		assert.ErrorIs(t, err, slot.ErrInvalidDateKey)
	})

	t.Run("slot time", func(t *testing.T) {
		_, err := slot.NewTimeSlot("9:00", true, money.New(0))
		assert.ErrorIs(t, err, slot.ErrInvalidTime)
		_, err = slot.NewTimeSlot("24:00", true, money.New(0))
		assert.ErrorIs(t, err, slot.ErrInvalidTime)
	})

	t.Run("lock key", func(t *testing.T) {
		assert.Equal(t, "3:2025-03-10-10:00", slot.LockKey(3, "2025-03-10", "10:00"))
	})
}

func TestCalendar(t *testing.T) {
	a, _ := slot.NewTimeSlot("09:00", true, money.New(7500))
	b, _ := slot.NewTimeSlot("09:30", false, money.New(7500))
	cal := slot.NewCalendar(1, []slot.DateKey{"2025-03-10", "2025-03-11"}, map[slot.DateKey][]slot.TimeSlot{
		"2025-03-10": {a, b},
		"2025-03-11": {b},
	})

	assert.True(t, cal.Contains("2025-03-10"))
	assert.False(t, cal.Contains("2025-03-12"))
	assert.Equal(t, 1, cal.AvailableCount("2025-03-10"))
	assert.False(t, cal.HasAvailable("2025-03-11"))

	found, ok := cal.Find("2025-03-10", "09:30")
	require.True(t, ok)
	assert.False(t, found.Available())
	_, ok = cal.Find("2025-03-10", "10:00")
	assert.False(t, ok)

	d, s, ok := cal.PickRandom(constRand{v: 0})
	require.True(t, ok)
	assert.Equal(t, slot.DateKey("2025-03-10"), d)
	assert.Equal(t, "09:00", s.Time())
}
