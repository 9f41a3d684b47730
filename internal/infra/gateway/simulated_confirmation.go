package gateway

import (
	"context"
	"log/slog"
	"time"

	"booking-flow/internal/pkg/clock"
	"booking-flow/internal/pkg/errs"
	"booking-flow/internal/usecase/commands"
)

// SimulatedConfirmation pretends to deliver the confirmation by e-mail and
// SMS; delivery only shows up in the log.
type SimulatedConfirmation struct {
	clock   clock.Clock
	latency time.Duration
	logger  *slog.Logger
}

func NewSimulatedConfirmation(clk clock.Clock, latency time.Duration, logger *slog.Logger) *SimulatedConfirmation {
	return &SimulatedConfirmation{clock: clk, latency: latency, logger: logger}
}

func (c *SimulatedConfirmation) Send(ctx context.Context, msg commands.ConfirmationMessage) error {
	if err := sleep(ctx, c.clock, c.latency); err != nil {
		return errs.Wrap(err, "confirmation interrupted")
	}
	c.logger.InfoContext(ctx, "confirmation delivered",
		slog.String("booking_id", msg.BookingID),
		slog.String("email", msg.Email),
		slog.String("phone", msg.Phone),
		slog.String("text", msg.Text))
	return nil
}
