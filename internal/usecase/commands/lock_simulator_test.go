//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/domain/slot"
	"booking-flow/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constRand struct{ v float64 }

func (r constRand) Float64() float64 { return r.v }
func (r constRand) IntN(n int) int   { return int(r.v * float64(n)) }

func TestLockSimulator_Tick(t *testing.T) {
	ctx := context.Background()
	settings := commands.LockSimulatorSettings{
		PollInterval: 3 * time.Second,
		Probability:  0.05,
		TTL:          30 * time.Second,
	}

	t.Run("locks one slot per session holding a calendar", func(t *testing.T) {
		f := newWizardFixture(t)
		withCalendar := f.start(t)
		f.toStep(t, withCalendar, booking.StepDateTime)
		f.start(t)

		sim := commands.NewLockSimulator(f.sessions, f.locks, constRand{v: 0}, settings, nil, slog.New(slog.DiscardHandler))

		assert.Equal(t, 1, sim.Tick(ctx))
		locked, err := f.locks.IsLocked(ctx, slot.LockKey(1, "2025-03-10", "09:00"))
		require.NoError(t, err)
		assert.True(t, locked)

		// the same slot is already held
		assert.Zero(t, sim.Tick(ctx))

		f.clock.Add(30 * time.Second)
		locked, err = f.locks.IsLocked(ctx, slot.LockKey(1, "2025-03-10", "09:00"))
		require.NoError(t, err)
		assert.False(t, locked)
	})

	t.Run("roll above the probability locks nothing", func(t *testing.T) {
		f := newWizardFixture(t)
		id := f.start(t)
		f.toStep(t, id, booking.StepDateTime)

		sim := commands.NewLockSimulator(f.sessions, f.locks, constRand{v: 0.5}, settings, nil, slog.New(slog.DiscardHandler))
		assert.Zero(t, sim.Tick(ctx))
	})

	t.Run("run stops with its context", func(t *testing.T) {
		f := newWizardFixture(t)
		sim := commands.NewLockSimulator(f.sessions, f.locks, constRand{v: 0}, commands.LockSimulatorSettings{
			PollInterval: time.Millisecond,
			Probability:  1,
			TTL:          time.Second,
		}, nil, slog.New(slog.DiscardHandler))

		runCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			sim.Run(runCtx)
			close(done)
		}()
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("simulator did not stop")
		}
	})
}
