package commands

import (
	"context"
	"log/slog"
	"time"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/domain/slot"
	"booking-flow/internal/observability/metrics"
	"booking-flow/internal/usecase/shared"
)

type LockSimulatorSettings struct {
	PollInterval time.Duration
	Probability  float64
	TTL          time.Duration
}

// LockSimulator stands in for other customers grabbing slots: on every tick
// each session holding a calendar may get one random slot locked for a while.
type LockSimulator struct {
	sessions shared.SessionStore
	locks    LockStore
	rnd      slot.RandSource
	settings LockSimulatorSettings
	metrics  *metrics.WizardMetrics
	logger   *slog.Logger
}

func NewLockSimulator(
	sessions shared.SessionStore,
	locks LockStore,
	rnd slot.RandSource,
	settings LockSimulatorSettings,
	metrics *metrics.WizardMetrics,
	logger *slog.Logger,
) *LockSimulator {
	return &LockSimulator{
		sessions: sessions,
		locks:    locks,
		rnd:      rnd,
		settings: settings,
		metrics:  metrics,
		logger:   logger,
	}
}

// Tick runs one simulation round and returns the number of slots locked.
func (s *LockSimulator) Tick(ctx context.Context) int {
	locked := 0
	for _, sess := range s.sessions.List() {
		var cal *slot.Calendar
		sess.View(func(w *booking.Wizard) { cal = w.Calendar() })
		if cal == nil || s.rnd.Float64() >= s.settings.Probability {
			continue
		}
		date, ts, ok := cal.PickRandom(s.rnd)
		if !ok {
			continue
		}
		key := slot.LockKey(cal.ProviderID(), date, ts.Time())
		took, err := s.locks.Lock(ctx, key, s.settings.TTL)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to lock slot", slog.String("key", key), slog.String("error", err.Error()))
			continue
		}
		if took {
			locked++
			s.metrics.ObserveSlotLock()
			s.logger.DebugContext(ctx, "slot locked by simulator", slog.String("key", key))
		}
	}
	return locked
}

// Run ticks every poll interval until ctx is cancelled.
func (s *LockSimulator) Run(ctx context.Context) {
	ticker := time.NewTicker(s.settings.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}
