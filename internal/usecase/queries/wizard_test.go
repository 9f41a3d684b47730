//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/domain/catalog"
	"booking-flow/internal/domain/slot"
	"booking-flow/internal/infra/lockstore"
	"booking-flow/internal/infra/sessionstore"
	"booking-flow/internal/pkg/clock"
	"booking-flow/internal/pkg/errs"
	"booking-flow/internal/usecase/queries"
	"booking-flow/internal/usecase/shared"
	"booking-flow/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wizardQueriesFixture struct {
	clock    *clock.MockClock
	catalog  *catalog.Catalog
	sessions *sessionstore.MemoryStore
	locks    *lockstore.MemoryStore
	queries  queries.WizardQueries
}

func newWizardQueriesFixture(t *testing.T) *wizardQueriesFixture {
	t.Helper()
	cat, err := builder.NewCatalogBuilder().Build()
	require.NoError(t, err)
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	f := &wizardQueriesFixture{
		clock:    clk,
		catalog:  cat,
		sessions: sessionstore.NewMemoryStore(),
		locks:    lockstore.NewMemoryStore(clk),
	}
	f.queries = queries.NewWizardQueries(f.sessions, f.locks, booking.NewDefaultPriceCalculator(), clk, time.UTC)
	return f
}

// session stores a new session and applies steps to its wizard.
func (f *wizardQueriesFixture) session(t *testing.T, steps func(w *booking.Wizard) error) string {
	t.Helper()
	s := shared.NewSession("sess-1", f.clock)
	f.sessions.Save(s)
	if steps != nil {
		require.NoError(t, s.Do(f.clock.Now(), steps))
	}
	return s.ID()
}

// lockReaderWithSessionCheck records whether the session was free while the
// lock store was being read.
type lockReaderWithSessionCheck struct {
	queries.SlotLockReader
	session     *shared.Session
	sessionFree bool
}

func (l *lockReaderWithSessionCheck) LockedAmong(ctx context.Context, keys []string) (map[string]bool, error) {
	done := make(chan struct{})
	go func() {
		l.session.View(func(*booking.Wizard) {})
		close(done)
	}()
	select {
	case <-done:
		l.sessionFree = true
	case <-time.After(time.Second):
	}
	return l.SlotLockReader.LockedAmong(ctx, keys)
}

func (f *wizardQueriesFixture) toDateTime(w *booking.Wizard) error {
	svc, _ := f.catalog.Service(1)
	p, _ := f.catalog.Provider(1)
	if err := w.SelectService(svc); err != nil {
		return err
	}
	if err := w.Advance(booking.Gate{}); err != nil {
		return err
	}
	generate := func(p *catalog.Provider) *slot.Calendar {
		return builder.NewCalendarBuilder().With(func(b *builder.CalendarBuilder) { b.ProviderID = p.ID() }).Build()
	}
	if err := w.SelectProvider(p, generate); err != nil {
		return err
	}
	return w.Advance(booking.Gate{})
}

func TestWizardQueries_GetSession(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh session", func(t *testing.T) {
		f := newWizardQueriesFixture(t)
		id := f.session(t, nil)

		view, err := f.queries.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1, view.CurrentStep)
		assert.Equal(t, "Service", view.CurrentLabel)
		assert.Equal(t, 0, view.HighestCompleted)
		assert.Nil(t, view.Service)
		assert.Nil(t, view.Summary)
		assert.False(t, view.CanProceed)
		require.Len(t, view.Steps, 5)
		assert.Equal(t, "current", view.Steps[0].Status)
		assert.Equal(t, "upcoming", view.Steps[1].Status)
		assert.Equal(t, "card", view.Payment.Method)
		assert.Empty(t, view.DetailsErrors)
	})

	t.Run("selected slot shows status and summary", func(t *testing.T) {
		f := newWizardQueriesFixture(t)
		id := f.session(t, func(w *booking.Wizard) error {
			if err := f.toDateTime(w); err != nil {
				return err
			}
			if err := w.SelectDate("2025-03-10", "2025-03-10"); err != nil {
				return err
			}
			return w.SelectTimeSlot("10:00", false)
		})

		view, err := f.queries.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 3, view.CurrentStep)
		assert.Equal(t, "Date & Time", view.CurrentLabel)
		assert.Equal(t, "2025-03-10", view.Date)
		require.NotNil(t, view.TimeSlot)
		assert.Equal(t, "available", view.TimeSlot.Status)
		assert.True(t, view.TimeSlot.Selected)
		require.NotNil(t, view.Summary)
		assert.Equal(t, "132.59", view.Summary.Total)
		assert.True(t, view.CanProceed)

		// a lock taken after selection blocks proceeding
		_, err = f.locks.Lock(ctx, slot.LockKey(1, "2025-03-10", "10:00"), 30*time.Second)
		require.NoError(t, err)
		view, err = f.queries.GetSession(ctx, id)
		require.NoError(t, err)
		assert.False(t, view.CanProceed)
		assert.Equal(t, "locked", view.TimeSlot.Status)
	})

	t.Run("payment draft is masked", func(t *testing.T) {
		f := newWizardQueriesFixture(t)
		id := f.session(t, func(w *booking.Wizard) error {
			if err := f.toDateTime(w); err != nil {
				return err
			}
			if err := w.SelectDate("2025-03-10", "2025-03-10"); err != nil {
				return err
			}
			if err := w.SelectTimeSlot("10:00", false); err != nil {
				return err
			}
			if err := w.Advance(booking.Gate{}); err != nil {
				return err
			}
			if err := w.EditDetails(builder.NewCustomerBuilder().BuildPatch()); err != nil {
				return err
			}
			if err := w.SubmitDetails(booking.NewFormValidator()); err != nil {
				return err
			}
			return w.EditPayment(builder.NewPaymentBuilder().BuildPatch())
		})

		view, err := f.queries.GetSession(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "**** **** **** 4242", view.Payment.CardNumber)
		assert.True(t, view.Payment.CVVProvided)
		assert.True(t, view.DetailsAccepted)
		assert.Equal(t, "jane.doe@example.com", view.Details.Email)
	})

	t.Run("slot locks are read after the session is released", func(t *testing.T) {
		f := newWizardQueriesFixture(t)
		id := f.session(t, func(w *booking.Wizard) error {
			if err := f.toDateTime(w); err != nil {
				return err
			}
			if err := w.SelectDate("2025-03-10", "2025-03-10"); err != nil {
				return err
			}
			return w.SelectTimeSlot("10:00", false)
		})
		s, ok := f.sessions.Get(id)
		require.True(t, ok)
		locks := &lockReaderWithSessionCheck{SlotLockReader: f.locks, session: s}
		q := queries.NewWizardQueries(f.sessions, locks, booking.NewDefaultPriceCalculator(), f.clock, time.UTC)

		_, err := f.locks.Lock(ctx, slot.LockKey(1, "2025-03-10", "10:00"), 30*time.Second)
		require.NoError(t, err)

		view, err := q.GetSession(ctx, id)
		require.NoError(t, err)
		assert.True(t, locks.sessionFree)
		require.NotNil(t, view.TimeSlot)
		assert.Equal(t, "locked", view.TimeSlot.Status)
		assert.False(t, view.CanProceed)
	})

	t.Run("unknown session", func(t *testing.T) {
		f := newWizardQueriesFixture(t)
		_, err := f.queries.GetSession(ctx, "missing")
		assert.True(t, errs.Is(err, errs.ErrSessionNotFound))
	})
}

func TestWizardQueries_GetSummary(t *testing.T) {
	ctx := context.Background()
	f := newWizardQueriesFixture(t)
	id := f.session(t, func(w *booking.Wizard) error {
		svc, _ := f.catalog.Service(2)
		return w.SelectService(svc)
	})

	got, err := f.queries.GetSummary(ctx, id)
	require.NoError(t, err)
	want := &queries.SummaryView{
		Subtotal:    "85.00",
		Tax:         "6.80",
		PlatformFee: "2.99",
		Total:       "94.79",
		TotalCents:  9479,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestWizardQueries_GetCalendarMonth(t *testing.T) {
	ctx := context.Background()

	t.Run("month grid", func(t *testing.T) {
		f := newWizardQueriesFixture(t)
		id := f.session(t, func(w *booking.Wizard) error {
			if err := f.toDateTime(w); err != nil {
				return err
			}
			return w.SelectDate("2025-03-11", "2025-03-10")
		})

		view, err := f.queries.GetCalendarMonth(ctx, id, "")
		require.NoError(t, err)
		assert.Equal(t, "2025-03", view.Month)
		assert.Equal(t, "March 2025", view.Label)
		assert.Equal(t, "2025-02", view.PrevMonth)
		assert.Equal(t, "2025-04", view.NextMonth)
		assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, view.Weekdays)

		// 1 March 2025 is a Saturday
		require.Len(t, view.Cells, 6+31)
		for _, c := range view.Cells[:6] {
			assert.Nil(t, c)
		}
		first := view.Cells[6]
		assert.Equal(t, 1, first.Day)
		assert.True(t, first.Past)
		assert.False(t, first.Available)

		today := view.Cells[6+9]
		assert.Equal(t, "2025-03-10", today.Date)
		assert.True(t, today.Today)
		assert.True(t, today.Available)
		assert.Equal(t, 3, today.SlotCount)

		selected := view.Cells[6+10]
		assert.True(t, selected.Selected)

		outside := view.Cells[6+19]
		assert.Equal(t, "2025-03-20", outside.Date)
		assert.False(t, outside.Available)
		assert.Zero(t, outside.SlotCount)
	})

	t.Run("explicit month", func(t *testing.T) {
		f := newWizardQueriesFixture(t)
		id := f.session(t, f.toDateTime)

		view, err := f.queries.GetCalendarMonth(ctx, id, "2025-04")
		require.NoError(t, err)
		// 1 April 2025 is a Tuesday
		require.Len(t, view.Cells, 2+30)
		for _, c := range view.Cells[2:] {
			assert.False(t, c.Available)
		}
	})

	t.Run("errors", func(t *testing.T) {
		f := newWizardQueriesFixture(t)
		id := f.session(t, nil)

		_, err := f.queries.GetCalendarMonth(ctx, id, "")
		assert.True(t, errs.Is(err, errs.ErrStepConflict), "got %v", err)

		f.sessions.Delete(id)
		id = f.session(t, f.toDateTime)
		_, err = f.queries.GetCalendarMonth(ctx, id, "March")
		assert.True(t, errs.Is(err, errs.ErrInvalidParameter), "got %v", err)
	})
}

func TestWizardQueries_GetDaySlots(t *testing.T) {
	ctx := context.Background()
	f := newWizardQueriesFixture(t)
	id := f.session(t, func(w *booking.Wizard) error {
		if err := f.toDateTime(w); err != nil {
			return err
		}
		if err := w.SelectDate("2025-03-10", "2025-03-10"); err != nil {
			return err
		}
		return w.SelectTimeSlot("10:00", false)
	})
	_, err := f.locks.Lock(ctx, slot.LockKey(1, "2025-03-10", "10:30"), 30*time.Second)
	require.NoError(t, err)

	view, err := f.queries.GetDaySlots(ctx, id, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", view.Date)

	statuses := map[string]string{}
	for _, s := range view.Slots {
		statuses[s.Time] = s.Status
		assert.Equal(t, s.Time == "10:00", s.Selected, s.Time)
	}
	assert.Equal(t, map[string]string{
		"09:00": "available",
		"09:30": "unavailable",
		"10:00": "available",
		"10:30": "locked",
	}, statuses)

	_, err = f.queries.GetDaySlots(ctx, id, "2025-03-20")
	assert.True(t, errs.Is(err, errs.ErrDateNotFound), "got %v", err)

	_, err = f.queries.GetDaySlots(ctx, id, "20/03/2025")
	assert.True(t, errs.Is(err, errs.ErrInvalidParameter), "got %v", err)
}
