//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/domain/catalog"
	"booking-flow/internal/domain/slot"
	"booking-flow/internal/infra/lockstore"
	"booking-flow/internal/infra/repository"
	"booking-flow/internal/infra/sessionstore"
	"booking-flow/internal/observability/metrics"
	"booking-flow/internal/pkg/clock"
	"booking-flow/internal/pkg/errs"
	"booking-flow/internal/usecase/commands"
	"booking-flow/internal/usecase/shared"
	"booking-flow/tests/common/builder"
	commandsmock "booking-flow/tests/mock/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var startTime = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

type stubGenerator struct{}

func (stubGenerator) Generate(p *catalog.Provider, _ time.Time) *slot.Calendar {
	return builder.NewCalendarBuilder().With(func(b *builder.CalendarBuilder) { b.ProviderID = p.ID() }).Build()
}

type wizardFixture struct {
	clock    *clock.MockClock
	sessions *sessionstore.MemoryStore
	locks    *lockstore.MemoryStore
	records  *repository.MemoryRecordRepository
	gateway  *commandsmock.MockPaymentGateway
	sender   *commandsmock.MockConfirmationSender
	cmds     commands.WizardCommands
}

func newWizardFixture(t *testing.T) *wizardFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	cat, err := builder.NewCatalogBuilder().Build()
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	f := &wizardFixture{
		clock:    clock.NewMockClock(startTime),
		sessions: sessionstore.NewMemoryStore(),
		records:  repository.NewMemoryRecordRepository(logger),
		gateway:  commandsmock.NewMockPaymentGateway(ctrl),
		sender:   commandsmock.NewMockConfirmationSender(ctrl),
	}
	f.locks = lockstore.NewMemoryStore(f.clock)
	f.cmds = commands.NewWizardUseCase(
		f.sessions,
		cat,
		stubGenerator{},
		f.locks,
		f.gateway,
		f.sender,
		f.records,
		booking.NewFormValidator(),
		booking.NewDefaultPriceCalculator(),
		metrics.NewWizardMetrics(prometheus.NewRegistry()),
		commands.WizardSettings{
			AutoAdvanceDelay:  800 * time.Millisecond,
			ConfirmationDelay: 2 * time.Second,
			SessionTTL:        30 * time.Minute,
			Location:          time.UTC,
		},
		f.clock,
		logger,
	)
	return f
}

func (f *wizardFixture) start(t *testing.T) string {
	t.Helper()
	id, err := f.cmds.StartSession(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func (f *wizardFixture) view(t *testing.T, id string, fn func(w *booking.Wizard)) {
	t.Helper()
	s, ok := f.sessions.Get(id)
	require.True(t, ok, "session %s not found", id)
	s.View(fn)
}

func (f *wizardFixture) current(t *testing.T, id string) booking.Step {
	t.Helper()
	var step booking.Step
	f.view(t, id, func(w *booking.Wizard) { step = w.Current() })
	return step
}

// toStep drives a session forward through the command API until it reaches target.
func (f *wizardFixture) toStep(t *testing.T, id string, target booking.Step) {
	t.Helper()
	ctx := context.Background()
	for f.current(t, id) < target {
		switch f.current(t, id) {
		case booking.StepService:
			require.NoError(t, f.cmds.SelectService(ctx, id, 1))
			require.NoError(t, f.cmds.Next(ctx, id))
		case booking.StepProvider:
			require.NoError(t, f.cmds.SelectProvider(ctx, id, 1))
			require.NoError(t, f.cmds.Next(ctx, id))
		case booking.StepDateTime:
			require.NoError(t, f.cmds.SelectDate(ctx, id, "2025-03-10"))
			require.NoError(t, f.cmds.SelectTimeSlot(ctx, id, "10:00"))
			require.NoError(t, f.cmds.Next(ctx, id))
		case booking.StepDetails:
			require.NoError(t, f.cmds.EditDetails(ctx, id, builder.NewCustomerBuilder().BuildPatch()))
			require.NoError(t, f.cmds.SubmitDetails(ctx, id))
		default:
			t.Fatalf("cannot drive past step %d", f.current(t, id))
		}
	}
}

func TestWizardUseCase_CompleteBooking(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture(t)
	id := f.start(t)

	// service and provider picks move on by themselves
	require.NoError(t, f.cmds.SelectService(ctx, id, 1))
	assert.Equal(t, booking.StepService, f.current(t, id))
	f.clock.Add(800 * time.Millisecond)
	assert.Equal(t, booking.StepProvider, f.current(t, id))

	require.NoError(t, f.cmds.SelectProvider(ctx, id, 1))
	f.clock.Add(800 * time.Millisecond)
	assert.Equal(t, booking.StepDateTime, f.current(t, id))

	require.NoError(t, f.cmds.SelectDate(ctx, id, "2025-03-10"))
	require.NoError(t, f.cmds.SelectTimeSlot(ctx, id, "10:00"))
	require.NoError(t, f.cmds.Next(ctx, id))
	require.NoError(t, f.cmds.EditDetails(ctx, id, builder.NewCustomerBuilder().BuildPatch()))
	require.NoError(t, f.cmds.Next(ctx, id))
	assert.Equal(t, booking.StepPayment, f.current(t, id))
	require.NoError(t, f.cmds.EditPayment(ctx, id, builder.NewPaymentBuilder().BuildPatch()))

	f.gateway.EXPECT().
		Charge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req commands.ChargeRequest) (*commands.ChargeResult, error) {
			assert.Equal(t, id, req.SessionID)
			assert.Equal(t, "132.59", req.Amount.String())
			assert.Equal(t, booking.PaymentMethodCard, req.Method)
			return &commands.ChargeResult{TransactionID: "txn_1"}, nil
		})

	result, err := f.cmds.SubmitPayment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, booking.NewRecordID(startTime.Add(1600*time.Millisecond)), result.BookingID)
	assert.Equal(t, "132.59", result.Total.String())

	f.view(t, id, func(w *booking.Wizard) {
		assert.True(t, w.IsComplete())
		assert.Equal(t, result.BookingID, w.BookingID())
		assert.False(t, w.Processing())
	})

	rec, err := f.records.FindByID(ctx, result.BookingID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", rec.Status())
	assert.Equal(t, booking.ConfirmationPending, rec.Confirmation())
	assert.Equal(t, "4242", rec.Payment().CardLast4)
	assert.Equal(t, slot.DateKey("2025-03-10"), rec.Date())
	assert.Equal(t, "10:00", rec.Time())

	f.sender.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg commands.ConfirmationMessage) error {
			assert.Equal(t, result.BookingID, msg.BookingID)
			assert.Equal(t, "jane.doe@example.com", msg.Email)
			assert.Equal(t, "Appointment booked with Sarah Johnson on Monday, March 10, 2025 at 10:00", msg.Text)
			return nil
		})
	f.clock.Add(2 * time.Second)

	rec, err = f.records.FindByID(ctx, result.BookingID)
	require.NoError(t, err)
	assert.Equal(t, booking.ConfirmationSent, rec.Confirmation())

	// a completed wizard rejects further edits
	err = f.cmds.Back(ctx, id)
	assert.True(t, errs.Is(err, errs.ErrStepConflict), "got %v", err)
}

func TestWizardUseCase_AutoAdvance(t *testing.T) {
	ctx := context.Background()

	t.Run("reselecting restarts the delay", func(t *testing.T) {
		f := newWizardFixture(t)
		id := f.start(t)

		require.NoError(t, f.cmds.SelectService(ctx, id, 1))
		f.clock.Add(500 * time.Millisecond)
		require.NoError(t, f.cmds.SelectService(ctx, id, 2))
		f.clock.Add(500 * time.Millisecond)
		assert.Equal(t, booking.StepService, f.current(t, id))
		f.clock.Add(300 * time.Millisecond)
		assert.Equal(t, booking.StepProvider, f.current(t, id))
	})

	t.Run("manual next cancels the pending advance", func(t *testing.T) {
		f := newWizardFixture(t)
		id := f.start(t)

		require.NoError(t, f.cmds.SelectService(ctx, id, 1))
		require.NoError(t, f.cmds.Next(ctx, id))
		assert.Equal(t, booking.StepProvider, f.current(t, id))
		assert.Zero(t, f.clock.Pending())

		f.clock.Add(time.Second)
		assert.Equal(t, booking.StepProvider, f.current(t, id))
	})

	t.Run("navigating away before the delay keeps the user where they went", func(t *testing.T) {
		f := newWizardFixture(t)
		id := f.start(t)
		f.toStep(t, id, booking.StepDateTime)

		require.NoError(t, f.cmds.Back(ctx, id))
		require.NoError(t, f.cmds.SelectProvider(ctx, id, 2))
		require.NoError(t, f.cmds.Back(ctx, id))
		f.clock.Add(time.Second)
		assert.Equal(t, booking.StepService, f.current(t, id))
	})

	t.Run("navigation racing an already fired advance wins", func(t *testing.T) {
		f := newWizardFixture(t)
		id := f.start(t)
		require.NoError(t, f.cmds.SelectService(ctx, id, 1))
		s, ok := f.sessions.Get(id)
		require.True(t, ok)

		// hold the session so the due advance claims its task and then waits on the lock
		held, release := make(chan struct{}), make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = s.Do(f.clock.Now(), func(*booking.Wizard) error {
				close(held)
				<-release
				return nil
			})
		}()
		<-held
		go func() {
			defer wg.Done()
			f.clock.Add(time.Second)
		}()
		require.Eventually(t, func() bool { return !s.Tasks().Pending(shared.TaskAutoAdvance) },
			time.Second, time.Millisecond)

		var navErr error
		go func() {
			defer wg.Done()
			navErr = f.cmds.GoToStep(ctx, id, int(booking.StepService))
		}()
		close(release)
		wg.Wait()

		// whichever takes the lock first, the explicit move decides the step
		require.NoError(t, navErr)
		assert.Equal(t, booking.StepService, f.current(t, id))
	})

	t.Run("ending the session drops pending tasks", func(t *testing.T) {
		f := newWizardFixture(t)
		id := f.start(t)

		require.NoError(t, f.cmds.SelectService(ctx, id, 1))
		require.NoError(t, f.cmds.EndSession(ctx, id))
		assert.Zero(t, f.clock.Pending())

		err := f.cmds.SelectService(ctx, id, 1)
		assert.True(t, errs.Is(err, errs.ErrSessionNotFound), "got %v", err)
	})
}

func TestWizardUseCase_Navigation(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture(t)
	id := f.start(t)

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"next without a service", func() error { return f.cmds.Next(ctx, id) }, errs.ErrStepConflict},
		{"jump forward", func() error { return f.cmds.GoToStep(ctx, id, 4) }, errs.ErrStepConflict},
		{"step out of range", func() error { return f.cmds.GoToStep(ctx, id, 9) }, errs.ErrInvalidParameter},
		{"unknown service", func() error { return f.cmds.SelectService(ctx, id, 99) }, errs.ErrServiceNotFound},
		{"unknown provider", func() error { return f.cmds.SelectProvider(ctx, id, 99) }, errs.ErrProviderNotFound},
		{"malformed date", func() error { return f.cmds.SelectDate(ctx, id, "10/03/2025") }, errs.ErrInvalidParameter},
		{"unknown session", func() error { return f.cmds.Next(ctx, "missing") }, errs.ErrSessionNotFound},
		{"end unknown session", func() error { return f.cmds.EndSession(ctx, "missing") }, errs.ErrSessionNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.want), "got %v", err)
		})
	}

	t.Run("go-to only moves backwards", func(t *testing.T) {
		f.toStep(t, id, booking.StepDetails)
		require.NoError(t, f.cmds.GoToStep(ctx, id, 2))
		assert.Equal(t, booking.StepProvider, f.current(t, id))
		require.NoError(t, f.cmds.Back(ctx, id))
		assert.Equal(t, booking.StepService, f.current(t, id))

		err := f.cmds.GoToStep(ctx, id, 3)
		assert.True(t, errs.Is(err, errs.ErrStepConflict), "got %v", err)

		err = f.cmds.Back(ctx, id)
		assert.True(t, errs.Is(err, errs.ErrInvalidParameter), "got %v", err)
	})
}

func TestWizardUseCase_SlotLocks(t *testing.T) {
	ctx := context.Background()
	key := slot.LockKey(1, "2025-03-10", "10:00")

	t.Run("locked slot cannot be selected until the lock expires", func(t *testing.T) {
		f := newWizardFixture(t)
		id := f.start(t)
		f.toStep(t, id, booking.StepDateTime)
		require.NoError(t, f.cmds.SelectDate(ctx, id, "2025-03-10"))

		took, err := f.locks.Lock(ctx, key, 30*time.Second)
		require.NoError(t, err)
		require.True(t, took)

		err = f.cmds.SelectTimeSlot(ctx, id, "10:00")
		assert.True(t, errs.Is(err, errs.ErrSlotUnavailable), "got %v", err)

		f.clock.Add(30 * time.Second)
		require.NoError(t, f.cmds.SelectTimeSlot(ctx, id, "10:00"))
	})

	t.Run("slot locked after selection blocks next", func(t *testing.T) {
		f := newWizardFixture(t)
		id := f.start(t)
		f.toStep(t, id, booking.StepDateTime)
		require.NoError(t, f.cmds.SelectDate(ctx, id, "2025-03-10"))
		require.NoError(t, f.cmds.SelectTimeSlot(ctx, id, "10:00"))

		_, err := f.locks.Lock(ctx, key, 30*time.Second)
		require.NoError(t, err)

		err = f.cmds.Next(ctx, id)
		require.Error(t, err)
		assert.Equal(t, booking.StepDateTime, f.current(t, id))
	})

	t.Run("booked slot is rejected", func(t *testing.T) {
		f := newWizardFixture(t)
		id := f.start(t)
		f.toStep(t, id, booking.StepDateTime)
		require.NoError(t, f.cmds.SelectDate(ctx, id, "2025-03-10"))

		err := f.cmds.SelectTimeSlot(ctx, id, "09:30")
		assert.True(t, errs.Is(err, errs.ErrSlotUnavailable), "got %v", err)
	})
}

func TestWizardUseCase_SubmitDetails(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture(t)
	id := f.start(t)
	f.toStep(t, id, booking.StepDetails)

	patch := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) {
		b.Email = "not-an-email"
		b.TermsAccepted = false
	}).BuildPatch()
	require.NoError(t, f.cmds.EditDetails(ctx, id, patch))

	err := f.cmds.SubmitDetails(ctx, id)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrDomainValidation), "got %v", err)

	var ve *booking.ValidationError
	require.True(t, errs.As(err, &ve))
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "termsAccepted")
	assert.Equal(t, booking.StepDetails, f.current(t, id))

	// editing a field clears its error
	email := "jane.doe@example.com"
	require.NoError(t, f.cmds.EditDetails(ctx, id, booking.DetailsPatch{Email: &email}))
	f.view(t, id, func(w *booking.Wizard) {
		assert.NotContains(t, w.DetailsErrors(), "email")
		assert.Contains(t, w.DetailsErrors(), "termsAccepted")
	})
}

func TestWizardUseCase_SubmitPayment(t *testing.T) {
	ctx := context.Background()

	toPayment := func(t *testing.T, f *wizardFixture, mutate func(*builder.PaymentBuilder)) string {
		t.Helper()
		id := f.start(t)
		f.toStep(t, id, booking.StepPayment)
		require.NoError(t, f.cmds.EditPayment(ctx, id, builder.NewPaymentBuilder().With(mutate).BuildPatch()))
		return id
	}

	t.Run("invalid form never reaches the gateway", func(t *testing.T) {
		f := newWizardFixture(t)
		id := toPayment(t, f, func(b *builder.PaymentBuilder) { b.CVV = "1" })

		_, err := f.cmds.SubmitPayment(ctx, id)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation), "got %v", err)
		f.view(t, id, func(w *booking.Wizard) {
			assert.False(t, w.Processing())
			assert.Contains(t, w.PaymentErrors(), "cvv")
		})
	})

	t.Run("declined card keeps the wizard on payment", func(t *testing.T) {
		f := newWizardFixture(t)
		id := toPayment(t, f, func(b *builder.PaymentBuilder) { b.CardNumber = "4000 0000 0000 0002" })

		f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(nil, commands.ErrChargeDeclined)

		_, err := f.cmds.SubmitPayment(ctx, id)
		assert.True(t, errs.Is(err, errs.ErrPaymentDeclined), "got %v", err)
		f.view(t, id, func(w *booking.Wizard) {
			assert.Equal(t, booking.StepPayment, w.Current())
			assert.False(t, w.Processing())
			assert.NotEmpty(t, w.PaymentFailure())
		})

		// a retry with another card goes through
		require.NoError(t, f.cmds.EditPayment(ctx, id, builder.NewPaymentBuilder().BuildPatch()))
		f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(&commands.ChargeResult{TransactionID: "txn_2"}, nil)
		_, err = f.cmds.SubmitPayment(ctx, id)
		require.NoError(t, err)
		f.view(t, id, func(w *booking.Wizard) { assert.Empty(t, w.PaymentFailure()) })
	})

	t.Run("gateway failure", func(t *testing.T) {
		f := newWizardFixture(t)
		id := toPayment(t, f, func(*builder.PaymentBuilder) {})

		f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := f.cmds.SubmitPayment(ctx, id)
		assert.True(t, errs.Is(err, errs.ErrPaymentGateway), "got %v", err)
	})

	t.Run("concurrent submit and session end while charging", func(t *testing.T) {
		f := newWizardFixture(t)
		id := toPayment(t, f, func(*builder.PaymentBuilder) {})

		started := make(chan struct{})
		f.gateway.EXPECT().
			Charge(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ commands.ChargeRequest) (*commands.ChargeResult, error) {
				close(started)
				<-ctx.Done()
				return nil, ctx.Err()
			})

		errCh := make(chan error, 1)
		go func() {
			_, err := f.cmds.SubmitPayment(ctx, id)
			errCh <- err
		}()
		<-started

		_, err := f.cmds.SubmitPayment(ctx, id)
		assert.True(t, errs.Is(err, errs.ErrPaymentInFlight), "got %v", err)
		err = f.cmds.EditPayment(ctx, id, builder.NewPaymentBuilder().BuildPatch())
		assert.True(t, errs.Is(err, errs.ErrPaymentInFlight), "got %v", err)
		assert.Zero(t, f.cmds.ExpireIdleSessions(ctx))

		require.NoError(t, f.cmds.EndSession(ctx, id))
		err = <-errCh
		assert.True(t, errs.Is(err, errs.ErrSessionNotFound), "got %v", err)
	})

	t.Run("colliding booking id is retried with the next millisecond", func(t *testing.T) {
		f := newWizardFixture(t)
		id := toPayment(t, f, func(*builder.PaymentBuilder) {})

		taken := builder.NewRecordBuilder().With(func(b *builder.RecordBuilder) {
			b.ID = booking.NewRecordID(f.clock.Now())
		}).MustBuild()
		require.NoError(t, f.records.Create(ctx, taken))

		f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(&commands.ChargeResult{TransactionID: "txn_3"}, nil)
		result, err := f.cmds.SubmitPayment(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, booking.NewRecordID(f.clock.Now().Add(time.Millisecond)), result.BookingID)
	})

	t.Run("booking clears the hold on its slot", func(t *testing.T) {
		f := newWizardFixture(t)
		id := toPayment(t, f, func(*builder.PaymentBuilder) {})
		key := slot.LockKey(1, "2025-03-10", "10:00")
		_, err := f.locks.Lock(ctx, key, time.Minute)
		require.NoError(t, err)

		f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(&commands.ChargeResult{TransactionID: "txn_5"}, nil)
		_, err = f.cmds.SubmitPayment(ctx, id)
		require.NoError(t, err)

		locked, err := f.locks.IsLocked(ctx, key)
		require.NoError(t, err)
		assert.False(t, locked)
	})

	t.Run("failed confirmation is recorded", func(t *testing.T) {
		f := newWizardFixture(t)
		id := toPayment(t, f, func(*builder.PaymentBuilder) {})

		f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return(&commands.ChargeResult{TransactionID: "txn_4"}, nil)
		result, err := f.cmds.SubmitPayment(ctx, id)
		require.NoError(t, err)

		f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
		f.clock.Add(2 * time.Second)

		rec, err := f.records.FindByID(ctx, result.BookingID)
		require.NoError(t, err)
		assert.Equal(t, booking.ConfirmationFailed, rec.Confirmation())
	})
}

func TestWizardUseCase_ExpireIdleSessions(t *testing.T) {
	ctx := context.Background()
	f := newWizardFixture(t)

	stale := f.start(t)
	f.clock.Add(20 * time.Minute)
	fresh := f.start(t)
	f.clock.Add(11 * time.Minute)

	assert.Equal(t, 1, f.cmds.ExpireIdleSessions(ctx))
	_, ok := f.sessions.Get(stale)
	assert.False(t, ok)
	_, ok = f.sessions.Get(fresh)
	assert.True(t, ok)

	// activity resets the idle timer
	require.NoError(t, f.cmds.SelectService(ctx, fresh, 1))
	f.clock.Add(25 * time.Minute)
	assert.Zero(t, f.cmds.ExpireIdleSessions(ctx))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{booking.ErrWrongStep, errs.ErrStepConflict},
		{booking.ErrNoCalendar, errs.ErrStepConflict},
		{booking.ErrSlotNotSelectable, errs.ErrSlotUnavailable},
		{booking.ErrInvalidStep, errs.ErrInvalidParameter},
		{&booking.ValidationError{Fields: booking.FieldErrors{"email": "bad"}}, errs.ErrDomainValidation},
		{booking.ErrPaymentProcessing, errs.ErrPaymentInFlight},
		{catalog.ErrServiceNotFound, errs.ErrServiceNotFound},
		{shared.ErrSessionClosed, errs.ErrSessionNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got := commands.Classify(tt.err)
			assert.True(t, errs.Is(got, tt.want), "got %v", got)
			assert.True(t, errors.Is(got, tt.err))
		})
	}

	assert.NoError(t, commands.Classify(nil))
	plain := errors.New("boom")
	assert.Equal(t, plain, commands.Classify(plain))
}
