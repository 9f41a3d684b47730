package components

import (
	"booking-flow/internal/domain/booking"
	"booking-flow/internal/pkg/clock"
	"booking-flow/internal/pkg/config"
	"booking-flow/internal/usecase/commands"
	"booking-flow/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	fx.Annotate(
		booking.NewFormValidator,
		fx.As(new(booking.Validator)),
	),
	NewWizardSettings,
	NewLockSimulatorSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewWizardUseCase,
		commands.NewLockSimulator,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		NewWizardQueries,
		NewBookingQueries,
	),
)

func NewPriceCalculator(cfg config.Config) *booking.DefaultPriceCalculator {
	return &booking.DefaultPriceCalculator{
		TaxRatePercent:   cfg.Pricing.TaxRatePercent,
		PlatformFeeCents: cfg.Pricing.PlatformFeeCents,
	}
}

func NewWizardSettings(cfg config.Config) commands.WizardSettings {
	return commands.WizardSettings{
		AutoAdvanceDelay:  cfg.Wizard.AutoAdvanceDelay,
		ConfirmationDelay: cfg.Wizard.ConfirmationDelay,
		SessionTTL:        cfg.Wizard.SessionTTL,
		Location:          cfg.Wizard.Location(),
	}
}

func NewLockSimulatorSettings(cfg config.Config) commands.LockSimulatorSettings {
	return commands.LockSimulatorSettings{
		PollInterval: cfg.Lock.PollInterval,
		Probability:  cfg.Lock.Probability,
		TTL:          cfg.Lock.TTL,
	}
}

func NewWizardQueries(
	sessions queries.SessionReadStore,
	locks queries.SlotLockReader,
	pricing booking.PriceCalculator,
	clk clock.Clock,
	cfg config.Config,
) queries.WizardQueries {
	return queries.NewWizardQueries(sessions, locks, pricing, clk, cfg.Wizard.Location())
}

func NewBookingQueries(store queries.BookingReadStore, cfg config.Config) queries.BookingQueries {
	return queries.NewBookingQueries(store, cfg.Wizard.Location())
}
