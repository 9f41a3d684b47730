package components

import (
	"log/slog"

	"booking-flow/internal/domain/slot"
	"booking-flow/internal/infra/fixtures"
	"booking-flow/internal/infra/gateway"
	"booking-flow/internal/infra/sessionstore"
	"booking-flow/internal/pkg/clock"
	"booking-flow/internal/pkg/config"
	"booking-flow/internal/pkg/money"
	"booking-flow/internal/usecase/commands"
	"booking-flow/internal/usecase/queries"
	"booking-flow/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			sessionstore.NewMemoryStore,
			fx.As(new(shared.SessionStore)),
			fx.As(new(queries.SessionReadStore)),
		),
		fx.Annotate(
			fixtures.NewCatalog,
			fx.As(new(commands.CatalogReader)),
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			NewConfirmationSender,
			fx.As(new(commands.ConfirmationSender)),
		),
		NewRandSource,
		fx.Annotate(
			NewSlotGenerator,
			fx.As(new(commands.CalendarGenerator)),
		),
	),
)

func NewPaymentGateway(cfg config.Config, clk clock.Clock, logger *slog.Logger) *gateway.SimulatedPayment {
	return gateway.NewSimulatedPayment(clk, cfg.Wizard.PaymentLatency, logger)
}

func NewConfirmationSender(cfg config.Config, clk clock.Clock, logger *slog.Logger) *gateway.SimulatedConfirmation {
	return gateway.NewSimulatedConfirmation(clk, cfg.Wizard.ConfirmationLatency, logger)
}

func NewRandSource(cfg config.Config) slot.RandSource {
	return slot.NewRandSource(cfg.Slots.Seed)
}

func NewSlotGenerator(cfg config.Config, rnd slot.RandSource) *slot.Generator {
	return slot.NewGenerator(slot.GeneratorConfig{
		WindowDays:           cfg.Slots.WindowDays,
		OpenHour:             cfg.Slots.OpenHour,
		CloseHour:            cfg.Slots.CloseHour,
		IntervalMinutes:      cfg.Slots.IntervalMinutes,
		PresenceProbability:  cfg.Slots.PresenceProbability,
		AvailableProbability: cfg.Slots.AvailableProbability,
		DefaultPrice:         money.New(cfg.Slots.DefaultPriceCents),
		Location:             cfg.Wizard.Location(),
	}, rnd)
}
