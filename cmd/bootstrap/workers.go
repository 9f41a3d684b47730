package bootstrap

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"booking-flow/internal/pkg/config"
	"booking-flow/internal/usecase/commands"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(
		StartLockSimulator,
		StartSessionJanitor,
	),
)

// runInBackground starts fn on OnStart and waits for it to return on OnStop.
func runInBackground(lc fx.Lifecycle, fn func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				fn(ctx)
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			wg.Wait()
			return nil
		},
	})
}

func StartLockSimulator(lc fx.Lifecycle, sim *commands.LockSimulator) {
	runInBackground(lc, sim.Run)
}

func StartSessionJanitor(lc fx.Lifecycle, cfg config.Config, cmds commands.WizardCommands, logger *slog.Logger) {
	runInBackground(lc, func(ctx context.Context) {
		ticker := time.NewTicker(cfg.Wizard.JanitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := cmds.ExpireIdleSessions(ctx); n > 0 {
					logger.InfoContext(ctx, "expired idle sessions", slog.Int("count", n))
				}
			}
		}
	})
}
