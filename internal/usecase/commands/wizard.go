package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/domain/catalog"
	"booking-flow/internal/domain/slot"
	"booking-flow/internal/infra"
	"booking-flow/internal/observability/metrics"
	"booking-flow/internal/pkg/clock"
	"booking-flow/internal/pkg/errs"
	"booking-flow/internal/pkg/money"
	"booking-flow/internal/usecase/shared"

	"github.com/google/uuid"
)

// maxRecordIDAttempts bounds retries when a generated booking id collides.
const maxRecordIDAttempts = 3

type CalendarGenerator interface {
	Generate(p *catalog.Provider, now time.Time) *slot.Calendar
}

type WizardSettings struct {
	AutoAdvanceDelay  time.Duration
	ConfirmationDelay time.Duration
	SessionTTL        time.Duration
	Location          *time.Location
}

type PaymentResult struct {
	BookingID string
	Total     money.Money
}

type WizardCommands interface {
	StartSession(ctx context.Context) (string, error)
	EndSession(ctx context.Context, sessionID string) error
	SelectService(ctx context.Context, sessionID string, serviceID int) error
	SelectProvider(ctx context.Context, sessionID string, providerID int) error
	SelectDate(ctx context.Context, sessionID string, date string) error
	SelectTimeSlot(ctx context.Context, sessionID string, hhmm string) error
	EditDetails(ctx context.Context, sessionID string, patch booking.DetailsPatch) error
	SubmitDetails(ctx context.Context, sessionID string) error
	EditPayment(ctx context.Context, sessionID string, patch booking.PaymentPatch) error
	SubmitPayment(ctx context.Context, sessionID string) (*PaymentResult, error)
	Next(ctx context.Context, sessionID string) error
	Back(ctx context.Context, sessionID string) error
	GoToStep(ctx context.Context, sessionID string, step int) error
	ExpireIdleSessions(ctx context.Context) int
}

type wizardUseCaseImpl struct {
	sessions  shared.SessionStore
	catalog   CatalogReader
	generator CalendarGenerator
	locks     LockStore
	gateway   PaymentGateway
	sender    ConfirmationSender
	records   RecordRepository
	validator booking.Validator
	pricing   booking.PriceCalculator
	metrics   *metrics.WizardMetrics
	settings  WizardSettings
	clock     clock.Clock
	logger    *slog.Logger
}

func NewWizardUseCase(
	sessions shared.SessionStore,
	catalog CatalogReader,
	generator CalendarGenerator,
	locks LockStore,
	gateway PaymentGateway,
	sender ConfirmationSender,
	records RecordRepository,
	validator booking.Validator,
	pricing booking.PriceCalculator,
	metrics *metrics.WizardMetrics,
	settings WizardSettings,
	clock clock.Clock,
	logger *slog.Logger,
) WizardCommands {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &wizardUseCaseImpl{
		sessions:  sessions,
		catalog:   catalog,
		generator: generator,
		locks:     locks,
		gateway:   gateway,
		sender:    sender,
		records:   records,
		validator: validator,
		pricing:   pricing,
		metrics:   metrics,
		settings:  settings,
		clock:     clock,
		logger:    logger,
	}
}

func (u *wizardUseCaseImpl) StartSession(ctx context.Context) (string, error) {
	id := uuid.NewString()
	u.sessions.Save(shared.NewSession(id, u.clock))
	u.metrics.SessionStarted()
	u.metrics.ObserveStep(booking.StepService.Label())
	u.logger.InfoContext(ctx, "wizard session started", slog.String("session_id", id))
	return id, nil
}

func (u *wizardUseCaseImpl) EndSession(ctx context.Context, sessionID string) error {
	s, ok := u.sessions.Delete(sessionID)
	if !ok {
		return errs.ErrSessionNotFound
	}
	s.Close()
	u.metrics.SessionEnded("ended")
	u.logger.InfoContext(ctx, "wizard session ended", slog.String("session_id", sessionID))
	return nil
}

func (u *wizardUseCaseImpl) SelectService(ctx context.Context, sessionID string, serviceID int) error {
	svc, err := u.catalog.Service(serviceID)
	if err != nil {
		return Classify(err)
	}
	return u.do(sessionID, func(s *shared.Session, w *booking.Wizard) error {
		if err := w.SelectService(svc); err != nil {
			return err
		}
		u.scheduleAutoAdvance(s, booking.StepService)
		return nil
	})
}

func (u *wizardUseCaseImpl) SelectProvider(ctx context.Context, sessionID string, providerID int) error {
	p, err := u.catalog.Provider(providerID)
	if err != nil {
		return Classify(err)
	}
	return u.do(sessionID, func(s *shared.Session, w *booking.Wizard) error {
		generate := func(p *catalog.Provider) *slot.Calendar {
			return u.generator.Generate(p, u.clock.Now())
		}
		if err := w.SelectProvider(p, generate); err != nil {
			return err
		}
		u.scheduleAutoAdvance(s, booking.StepProvider)
		return nil
	})
}

func (u *wizardUseCaseImpl) SelectDate(ctx context.Context, sessionID string, date string) error {
	d, err := slot.ParseDateKey(date)
	if err != nil {
		return Classify(err)
	}
	today := slot.NewDateKey(u.clock.Now().In(u.settings.Location))
	return u.do(sessionID, func(_ *shared.Session, w *booking.Wizard) error {
		return w.SelectDate(d, today)
	})
}

func (u *wizardUseCaseImpl) SelectTimeSlot(ctx context.Context, sessionID string, hhmm string) error {
	return u.do(sessionID, func(_ *shared.Session, w *booking.Wizard) error {
		locked := false
		if p := w.Provider(); p != nil && w.Date() != "" {
			var err error
			locked, err = u.locks.IsLocked(ctx, slot.LockKey(p.ID(), w.Date(), hhmm))
			if err != nil {
				return errs.Wrap(err, "check slot lock")
			}
		}
		return w.SelectTimeSlot(hhmm, locked)
	})
}

func (u *wizardUseCaseImpl) EditDetails(ctx context.Context, sessionID string, patch booking.DetailsPatch) error {
	return u.do(sessionID, func(_ *shared.Session, w *booking.Wizard) error {
		return w.EditDetails(patch)
	})
}

func (u *wizardUseCaseImpl) SubmitDetails(ctx context.Context, sessionID string) error {
	return u.do(sessionID, func(_ *shared.Session, w *booking.Wizard) error {
		return u.submitDetails(w)
	})
}

func (u *wizardUseCaseImpl) submitDetails(w *booking.Wizard) error {
	err := w.SubmitDetails(u.validator)
	if errors.Is(err, booking.ErrValidationFailed) {
		u.metrics.ObserveValidationFailure("details")
	}
	return err
}

func (u *wizardUseCaseImpl) EditPayment(ctx context.Context, sessionID string, patch booking.PaymentPatch) error {
	return u.do(sessionID, func(_ *shared.Session, w *booking.Wizard) error {
		return w.EditPayment(patch)
	})
}

func (u *wizardUseCaseImpl) Next(ctx context.Context, sessionID string) error {
	return u.do(sessionID, func(s *shared.Session, w *booking.Wizard) error {
		u.navigated(s)
		switch w.Current() {
		case booking.StepDetails:
			return u.submitDetails(w)
		case booking.StepDateTime:
			gate, err := u.gate(ctx, w)
			if err != nil {
				return err
			}
			return w.Advance(gate)
		default:
			return w.Advance(booking.Gate{})
		}
	})
}

func (u *wizardUseCaseImpl) Back(ctx context.Context, sessionID string) error {
	return u.do(sessionID, func(s *shared.Session, w *booking.Wizard) error {
		u.navigated(s)
		return w.Back()
	})
}

func (u *wizardUseCaseImpl) GoToStep(ctx context.Context, sessionID string, step int) error {
	return u.do(sessionID, func(s *shared.Session, w *booking.Wizard) error {
		if err := w.GoTo(booking.Step(step)); err != nil {
			return err
		}
		u.navigated(s)
		return nil
	})
}

// SubmitPayment validates the payment form, charges the summary total outside
// the session lock and, on success, stores the booking record and completes
// the wizard. Ending the session cancels an in-flight charge.
func (u *wizardUseCaseImpl) SubmitPayment(ctx context.Context, sessionID string) (*PaymentResult, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	var (
		req   ChargeRequest
		attrs booking.RecordAttrs
	)
	err = s.Do(u.clock.Now(), func(w *booking.Wizard) error {
		if err := w.BeginPayment(u.validator); err != nil {
			if errors.Is(err, booking.ErrValidationFailed) {
				u.metrics.ObserveValidationFailure("payment")
			}
			return err
		}
		breakdown := w.Summary(u.pricing)
		payment := w.Payment()
		req = ChargeRequest{
			SessionID:  sessionID,
			Amount:     breakdown.Total,
			Method:     payment.Method,
			CardNumber: payment.Card.CardNumber,
		}
		attrs = recordAttrs(w, breakdown)
		return nil
	})
	if err != nil {
		return nil, Classify(err)
	}

	chargeCtx, cancel := withSessionCancel(ctx, s.Context())
	defer cancel()

	started := u.clock.Now()
	_, chargeErr := u.gateway.Charge(chargeCtx, req)
	elapsed := u.clock.Now().Sub(started).Seconds()

	if chargeErr != nil {
		u.metrics.ObservePayment(string(req.Method), "failed", elapsed)
		u.logger.WarnContext(ctx, "simulated payment failed",
			slog.String("session_id", sessionID),
			slog.String("method", string(req.Method)),
			slog.String("error", chargeErr.Error()))
		return nil, u.failPayment(s, chargeErr)
	}

	// the charge went through; the record must be stored even if the caller went away
	record, err := u.persistRecord(context.WithoutCancel(ctx), attrs)
	if err != nil {
		s.View(func(w *booking.Wizard) { w.FailPayment("Your booking could not be saved. Please try again.") })
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	err = s.Do(u.clock.Now(), func(w *booking.Wizard) error {
		return w.CompletePayment(record.ID())
	})
	if err != nil {
		return nil, Classify(err)
	}

	u.metrics.ObservePayment(string(req.Method), "succeeded", elapsed)
	u.metrics.ObserveStep(booking.StepComplete.Label())
	u.logger.InfoContext(ctx, "booking confirmed",
		slog.String("session_id", sessionID),
		slog.String("booking_id", record.ID()),
		slog.String("total", record.Total().String()))

	u.releaseBookedSlot(context.WithoutCancel(ctx), attrs)
	u.scheduleConfirmation(s, record)

	return &PaymentResult{BookingID: record.ID(), Total: record.Total()}, nil
}

func (u *wizardUseCaseImpl) failPayment(s *shared.Session, chargeErr error) error {
	switch {
	case errors.Is(chargeErr, ErrChargeDeclined):
		s.View(func(w *booking.Wizard) { w.FailPayment("Your card was declined. Please use a different payment method.") })
		return errs.Mark(chargeErr, errs.ErrPaymentDeclined)
	case s.Context().Err() != nil:
		s.View(func(w *booking.Wizard) { w.FailPayment("Payment was cancelled.") })
		return errs.Mark(chargeErr, errs.ErrSessionNotFound)
	default:
		s.View(func(w *booking.Wizard) { w.FailPayment("Payment failed. Please try again.") })
		return errs.Mark(chargeErr, errs.ErrPaymentGateway)
	}
}

func (u *wizardUseCaseImpl) persistRecord(ctx context.Context, attrs booking.RecordAttrs) (*booking.Record, error) {
	createdAt := u.clock.Now()
	attrs.CreatedAt = createdAt

	var lastErr error
	for attempt := 0; attempt < maxRecordIDAttempts; attempt++ {
		attrs.ID = booking.NewRecordID(createdAt.Add(time.Duration(attempt) * time.Millisecond))
		record, err := booking.NewRecord(attrs)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		err = u.records.Create(ctx, record)
		if err == nil {
			return record, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, err
		}
		lastErr = err
	}
	return nil, errs.Wrap(lastErr, "allocate booking id")
}

// releaseBookedSlot drops any hold left on the slot the booking now occupies.
func (u *wizardUseCaseImpl) releaseBookedSlot(ctx context.Context, attrs booking.RecordAttrs) {
	key := slot.LockKey(attrs.ProviderID, attrs.Date, attrs.Time)
	if err := u.locks.Release(ctx, key); err != nil {
		u.logger.Warn("failed to release booked slot lock",
			slog.String("lock_key", key),
			slog.String("error", err.Error()))
	}
}

func (u *wizardUseCaseImpl) scheduleConfirmation(s *shared.Session, r *booking.Record) {
	msg := ConfirmationMessage{
		BookingID: r.ID(),
		Email:     r.Customer().Email,
		Phone:     r.Customer().Phone,
		Text:      booking.ShareText(r),
	}
	s.Tasks().Schedule(shared.TaskConfirmation, u.settings.ConfirmationDelay, func() {
		u.sendConfirmation(s.Context(), msg)
	})
}

// sendConfirmation is fire-and-forget: a failed delivery is recorded and
// logged, never retried.
func (u *wizardUseCaseImpl) sendConfirmation(ctx context.Context, msg ConfirmationMessage) {
	statusCtx := context.WithoutCancel(ctx)
	u.setConfirmation(statusCtx, msg.BookingID, booking.ConfirmationSending)

	if err := u.sender.Send(ctx, msg); err != nil {
		u.logger.Warn("confirmation delivery failed",
			slog.String("booking_id", msg.BookingID),
			slog.String("error", err.Error()))
		u.setConfirmation(statusCtx, msg.BookingID, booking.ConfirmationFailed)
		u.metrics.ObserveConfirmation(string(booking.ConfirmationFailed))
		return
	}
	u.setConfirmation(statusCtx, msg.BookingID, booking.ConfirmationSent)
	u.metrics.ObserveConfirmation(string(booking.ConfirmationSent))
}

func (u *wizardUseCaseImpl) setConfirmation(ctx context.Context, id string, status booking.ConfirmationStatus) {
	if err := u.records.UpdateConfirmation(ctx, id, status); err != nil {
		u.logger.Error("failed to update confirmation status",
			slog.String("booking_id", id),
			slog.String("status", string(status)),
			slog.String("error", err.Error()))
	}
}

// ExpireIdleSessions ends sessions idle for longer than the session TTL.
// Sessions with a charge in flight are left alone.
func (u *wizardUseCaseImpl) ExpireIdleSessions(ctx context.Context) int {
	cutoff := u.clock.Now().Add(-u.settings.SessionTTL)
	expired := 0
	for _, s := range u.sessions.List() {
		if s.IdleSince().After(cutoff) {
			continue
		}
		processing := false
		s.View(func(w *booking.Wizard) { processing = w.Processing() })
		if processing {
			continue
		}
		if _, ok := u.sessions.Delete(s.ID()); !ok {
			continue
		}
		s.Close()
		u.metrics.SessionEnded("expired")
		expired++
	}
	if expired > 0 {
		u.logger.InfoContext(ctx, "expired idle wizard sessions", slog.Int("count", expired))
	}
	return expired
}

func (u *wizardUseCaseImpl) session(id string) (*shared.Session, error) {
	s, ok := u.sessions.Get(id)
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	return s, nil
}

// do runs fn under the session lock, records step changes and classifies the
// returned error.
func (u *wizardUseCaseImpl) do(id string, fn func(s *shared.Session, w *booking.Wizard) error) error {
	s, err := u.session(id)
	if err != nil {
		return err
	}
	err = s.Do(u.clock.Now(), func(w *booking.Wizard) error {
		before := w.Current()
		if err := fn(s, w); err != nil {
			return err
		}
		if after := w.Current(); after != before {
			u.metrics.ObserveStep(after.Label())
		}
		return nil
	})
	return Classify(err)
}

// scheduleAutoAdvance moves the wizard past from after the configured delay,
// provided no navigation happened in between and its guard holds.
// Must be called inside Session.Do.
func (u *wizardUseCaseImpl) scheduleAutoAdvance(s *shared.Session, from booking.Step) {
	gen := s.Bump()
	s.Tasks().Schedule(shared.TaskAutoAdvance, u.settings.AutoAdvanceDelay, func() {
		_ = s.Do(u.clock.Now(), func(w *booking.Wizard) error {
			// a callback already past Cancel can still be waiting on the lock
			if s.Generation() != gen || w.Current() != from {
				return nil
			}
			if err := w.Advance(booking.Gate{}); err != nil {
				u.logger.Debug("auto-advance skipped",
					slog.String("session_id", s.ID()),
					slog.String("reason", err.Error()))
				return nil
			}
			u.metrics.ObserveStep(w.Current().Label())
			return nil
		})
	})
}

// navigated invalidates any auto-advance scheduled before an explicit move.
func (u *wizardUseCaseImpl) navigated(s *shared.Session) {
	s.Bump()
	s.Tasks().Cancel(shared.TaskAutoAdvance)
}

func (u *wizardUseCaseImpl) gate(ctx context.Context, w *booking.Wizard) (booking.Gate, error) {
	p, ts := w.Provider(), w.TimeSlot()
	if p == nil || ts == nil {
		return booking.Gate{}, nil
	}
	locked, err := u.locks.IsLocked(ctx, slot.LockKey(p.ID(), w.Date(), ts.Time()))
	if err != nil {
		return booking.Gate{}, errs.Wrap(err, "check slot lock")
	}
	return booking.Gate{SlotLocked: locked}, nil
}

func recordAttrs(w *booking.Wizard, b booking.Breakdown) booking.RecordAttrs {
	svc, p, ts := w.Service(), w.Provider(), w.TimeSlot()
	details, payment := w.Details(), w.Payment()
	return booking.RecordAttrs{
		ServiceID:        svc.ID(),
		ServiceName:      svc.Name(),
		ProviderID:       p.ID(),
		ProviderName:     p.Name(),
		ProviderLocation: p.Location(),
		Date:             w.Date(),
		Time:             ts.Time(),
		Customer: booking.CustomerSnapshot{
			FirstName:       details.FirstName,
			LastName:        details.LastName,
			Email:           details.Email,
			Phone:           details.Phone,
			MarketingEmails: details.MarketingEmails,
		},
		SpecialRequests: details.SpecialRequests,
		Payment: booking.PaymentSummary{
			Method:            payment.Method,
			CardLast4:         payment.CardLast4(),
			SavePaymentMethod: payment.SavePaymentMethod,
		},
		Pricing: b,
	}
}

// withSessionCancel derives a context that is also cancelled when the session ends.
func withSessionCancel(ctx, sessionCtx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(ctx)
	stop := context.AfterFunc(sessionCtx, func() { cancel(shared.ErrSessionClosed) })
	return ctx, func() {
		stop()
		cancel(nil)
	}
}
