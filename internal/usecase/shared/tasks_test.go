//go:build unit

package shared_test

import (
	"testing"
	"time"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/pkg/clock"
	"booking-flow/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskGroup(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("runs a task once its delay elapses", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		g := shared.NewTaskGroup(clk)
		runs := 0
		require.True(t, g.Schedule("a", time.Second, func() { runs++ }))
		assert.True(t, g.Pending("a"))

		clk.Add(999 * time.Millisecond)
		assert.Equal(t, 0, runs)
		clk.Add(time.Millisecond)
		assert.Equal(t, 1, runs)
		assert.False(t, g.Pending("a"))
	})

	t.Run("rescheduling a name replaces the pending task", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		g := shared.NewTaskGroup(clk)
		var got []string
		g.Schedule("a", time.Second, func() { got = append(got, "first") })
		clk.Add(500 * time.Millisecond)
		g.Schedule("a", time.Second, func() { got = append(got, "second") })

		clk.Add(600 * time.Millisecond)
		assert.Empty(t, got)
		clk.Add(400 * time.Millisecond)
		assert.Equal(t, []string{"second"}, got)
	})

	t.Run("cancel and close stop pending tasks", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		g := shared.NewTaskGroup(clk)
		runs := 0
		g.Schedule("a", time.Second, func() { runs++ })
		g.Schedule("b", time.Second, func() { runs++ })

		assert.True(t, g.Cancel("a"))
		assert.False(t, g.Cancel("a"))
		g.Close()
		assert.False(t, g.Schedule("c", time.Second, func() { runs++ }))

		clk.Add(time.Minute)
		assert.Equal(t, 0, runs)
	})
}

func TestSession(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)
	s := shared.NewSession("abc", clk)

	later := start.Add(time.Minute)
	require.NoError(t, s.Do(later, func(w *booking.Wizard) error { return nil }))
	assert.Equal(t, later, s.IdleSince())

	s.View(func(w *booking.Wizard) { assert.Equal(t, booking.StepService, w.Current()) })

	var first, second uint64
	require.NoError(t, s.Do(later, func(*booking.Wizard) error {
		first = s.Bump()
		second = s.Bump()
		assert.Equal(t, second, s.Generation())
		return nil
	}))
	assert.Greater(t, second, first)

	s.Close()
	assert.Error(t, s.Context().Err())
	err := s.Do(later, func(w *booking.Wizard) error { return nil })
	assert.ErrorIs(t, err, shared.ErrSessionClosed)
}
