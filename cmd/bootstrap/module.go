package bootstrap

import (
	"booking-flow/cmd/bootstrap/components"
	"booking-flow/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

// Module is the full application graph; cmd/main.go adds the HTTP server.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	StoreModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
