package bootstrap

import (
	"fmt"
	"log/slog"

	"booking-flow/internal/infra/lockstore"
	"booking-flow/internal/infra/repository"
	"booking-flow/internal/pkg/clock"
	"booking-flow/internal/pkg/config"
	"booking-flow/internal/usecase/commands"
	"booking-flow/internal/usecase/queries"

	"go.uber.org/fx"
)

// StoreModule picks the record and lock backends from config. Postgres and
// Redis connections are only opened for the backend that needs them.
var StoreModule = fx.Module("store",
	fx.Provide(
		NewRecordRepository,
		NewLockStore,
		func(r commands.RecordRepository) queries.BookingReadStore { return r },
		func(l commands.LockStore) queries.SlotLockReader { return l },
	),
)

func NewRecordRepository(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.RecordRepository, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return repository.NewMemoryRecordRepository(logger), nil
	case config.BackendPostgres:
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return nil, err
		}
		return repository.NewBookingRecordRepository(pool, logger), nil
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Store.Backend)
	}
}

func NewLockStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (commands.LockStore, error) {
	switch cfg.Lock.Backend {
	case config.BackendMemory:
		return lockstore.NewMemoryStore(clk), nil
	case config.BackendRedis:
		return lockstore.NewRedisStore(NewRedisClient(lc, cfg), logger), nil
	default:
		return nil, fmt.Errorf("unknown LOCK_BACKEND %q", cfg.Lock.Backend)
	}
}
