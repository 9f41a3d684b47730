package gateway

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/pkg/clock"
	"booking-flow/internal/pkg/errs"
	"booking-flow/internal/usecase/commands"

	"github.com/google/uuid"
)

// DeclinedCardNumber is always refused by SimulatedPayment.
const DeclinedCardNumber = "4000000000000002"

// SimulatedPayment approves every charge after a fixed latency.
type SimulatedPayment struct {
	clock   clock.Clock
	latency time.Duration
	logger  *slog.Logger
}

func NewSimulatedPayment(clk clock.Clock, latency time.Duration, logger *slog.Logger) *SimulatedPayment {
	return &SimulatedPayment{clock: clk, latency: latency, logger: logger}
}

func (p *SimulatedPayment) Charge(ctx context.Context, req commands.ChargeRequest) (*commands.ChargeResult, error) {
	if err := sleep(ctx, p.clock, p.latency); err != nil {
		return nil, errs.Wrap(err, "charge interrupted")
	}

	if req.Method == booking.PaymentMethodCard && strings.ReplaceAll(req.CardNumber, " ", "") == DeclinedCardNumber {
		p.logger.InfoContext(ctx, "simulated charge declined",
			slog.String("session_id", req.SessionID),
			slog.String("amount", req.Amount.String()))
		return nil, commands.ErrChargeDeclined
	}

	txID := "txn_" + uuid.NewString()
	p.logger.InfoContext(ctx, "simulated charge approved",
		slog.String("session_id", req.SessionID),
		slog.String("method", string(req.Method)),
		slog.String("amount", req.Amount.String()),
		slog.String("transaction_id", txID))
	return &commands.ChargeResult{TransactionID: txID}, nil
}
