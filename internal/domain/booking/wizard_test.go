//go:build unit

package booking_test

import (
	"testing"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/domain/catalog"
	"booking-flow/internal/domain/slot"
	"booking-flow/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const today = slot.DateKey("2025-03-10")

type fixture struct {
	catalog  *catalog.Catalog
	generate func(*catalog.Provider) *slot.Calendar
	calls    int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c, err := builder.NewCatalogBuilder().Build()
	require.NoError(t, err)
	f := &fixture{catalog: c}
	f.generate = func(p *catalog.Provider) *slot.Calendar {
		f.calls++
		return builder.NewCalendarBuilder().With(func(b *builder.CalendarBuilder) { b.ProviderID = p.ID() }).Build()
	}
	return f
}

func (f *fixture) service(t *testing.T, id int) *catalog.Service {
	t.Helper()
	s, err := f.catalog.Service(id)
	require.NoError(t, err)
	return s
}

func (f *fixture) provider(t *testing.T, id int) *catalog.Provider {
	t.Helper()
	p, err := f.catalog.Provider(id)
	require.NoError(t, err)
	return p
}

// toStep drives a fresh wizard forward until it reaches target.
func (f *fixture) toStep(t *testing.T, target booking.Step) *booking.Wizard {
	t.Helper()
	w := booking.NewWizard()
	v := booking.NewFormValidator()
	for w.Current() < target {
		switch w.Current() {
		case booking.StepService:
			require.NoError(t, w.SelectService(f.service(t, 1)))
			require.NoError(t, w.Advance(booking.Gate{}))
		case booking.StepProvider:
			require.NoError(t, w.SelectProvider(f.provider(t, 1), f.generate))
			require.NoError(t, w.Advance(booking.Gate{}))
		case booking.StepDateTime:
			require.NoError(t, w.SelectDate(today, today))
			require.NoError(t, w.SelectTimeSlot("10:00", false))
			require.NoError(t, w.Advance(booking.Gate{}))
		case booking.StepDetails:
			require.NoError(t, w.EditDetails(builder.NewCustomerBuilder().BuildPatch()))
			require.NoError(t, w.SubmitDetails(v))
		case booking.StepPayment:
			require.NoError(t, w.EditPayment(builder.NewPaymentBuilder().BuildPatch()))
			require.NoError(t, w.BeginPayment(v))
			require.NoError(t, w.CompletePayment("BK-000001"))
		}
		assertProgressInvariant(t, w)
	}
	return w
}

func assertProgressInvariant(t *testing.T, w *booking.Wizard) {
	t.Helper()
	assert.LessOrEqual(t, int(w.Current()), int(w.HighestCompleted())+1,
		"current step %d ahead of completed %d", w.Current(), w.HighestCompleted())
}

func TestWizardGuards(t *testing.T) {
	f := newFixture(t)

	t.Run("starts on service with nothing completed", func(t *testing.T) {
		w := booking.NewWizard()
		assert.Equal(t, booking.StepService, w.Current())
		assert.Equal(t, booking.Step(0), w.HighestCompleted())
	})

	t.Run("cannot advance without a service", func(t *testing.T) {
		w := booking.NewWizard()
		assert.ErrorIs(t, w.Advance(booking.Gate{}), booking.ErrGuardNotSatisfied)
		assert.Equal(t, booking.StepService, w.Current())
	})

	t.Run("cannot advance without a provider", func(t *testing.T) {
		w := f.toStep(t, booking.StepProvider)
		assert.ErrorIs(t, w.Advance(booking.Gate{}), booking.ErrGuardNotSatisfied)
	})

	t.Run("date and time needs both a date and a slot", func(t *testing.T) {
		w := f.toStep(t, booking.StepDateTime)
		assert.ErrorIs(t, w.Advance(booking.Gate{}), booking.ErrGuardNotSatisfied)

		require.NoError(t, w.SelectDate(today, today))
		assert.ErrorIs(t, w.Advance(booking.Gate{}), booking.ErrGuardNotSatisfied)

		require.NoError(t, w.SelectTimeSlot("10:00", false))
		assert.ErrorIs(t, w.Advance(booking.Gate{SlotLocked: true}), booking.ErrSlotNotSelectable)
		assert.Equal(t, booking.StepDateTime, w.Current())

		require.NoError(t, w.Advance(booking.Gate{}))
		assert.Equal(t, booking.StepDetails, w.Current())
	})

	t.Run("details need an accepted submit", func(t *testing.T) {
		w := f.toStep(t, booking.StepDetails)
		assert.ErrorIs(t, w.Advance(booking.Gate{}), booking.ErrGuardNotSatisfied)
	})

	t.Run("payment has no plain forward action", func(t *testing.T) {
		w := f.toStep(t, booking.StepPayment)
		assert.ErrorIs(t, w.Advance(booking.Gate{}), booking.ErrWrongStep)
	})

	t.Run("selections only apply on their own step", func(t *testing.T) {
		w := f.toStep(t, booking.StepProvider)
		assert.ErrorIs(t, w.SelectService(f.service(t, 2)), booking.ErrWrongStep)
		assert.ErrorIs(t, w.SelectDate(today, today), booking.ErrWrongStep)
	})
}

func TestWizardNavigation(t *testing.T) {
	f := newFixture(t)

	t.Run("go to an earlier step, then only backwards or in place", func(t *testing.T) {
		w := f.toStep(t, booking.StepPayment)
		require.NoError(t, w.GoTo(booking.StepDetails))
		assert.Equal(t, booking.StepDetails, w.Current())
		assertProgressInvariant(t, w)

		require.NoError(t, w.GoTo(booking.StepDetails))
		assert.Equal(t, booking.StepDetails, w.Current())

		require.NoError(t, w.GoTo(booking.StepService))
		assert.Equal(t, booking.StepService, w.Current())
		assertProgressInvariant(t, w)

		for _, later := range []booking.Step{booking.StepProvider, booking.StepDetails, booking.StepPayment} {
			assert.ErrorIs(t, w.GoTo(later), booking.ErrForwardJump)
			assert.Equal(t, booking.StepService, w.Current())
		}
	})

	t.Run("forward jumps are rejected", func(t *testing.T) {
		w := f.toStep(t, booking.StepDetails)
		require.NoError(t, w.GoTo(booking.StepService))
		assert.ErrorIs(t, w.GoTo(booking.StepDateTime), booking.ErrForwardJump)
		assert.Equal(t, booking.StepService, w.Current())
	})

	t.Run("out of range step", func(t *testing.T) {
		w := booking.NewWizard()
		assert.ErrorIs(t, w.GoTo(0), booking.ErrInvalidStep)
		assert.ErrorIs(t, w.GoTo(7), booking.ErrInvalidStep)
	})

	t.Run("back stops at the first step", func(t *testing.T) {
		w := f.toStep(t, booking.StepProvider)
		require.NoError(t, w.Back())
		assert.Equal(t, booking.StepService, w.Current())
		assert.ErrorIs(t, w.Back(), booking.ErrInvalidStep)
	})

	t.Run("completed wizard rejects navigation", func(t *testing.T) {
		w := f.toStep(t, booking.StepComplete)
		assert.True(t, w.IsComplete())
		assert.Equal(t, "BK-000001", w.BookingID())
		assert.ErrorIs(t, w.Back(), booking.ErrWizardComplete)
		assert.ErrorIs(t, w.GoTo(booking.StepService), booking.ErrWizardComplete)
	})

	t.Run("progress marks steps and clickability", func(t *testing.T) {
		w := f.toStep(t, booking.StepDateTime)
		views := w.Progress()
		require.Len(t, views, 5)

		want := []booking.StepStatus{
			booking.StepStatusCompleted, booking.StepStatusCompleted, booking.StepStatusCurrent,
			booking.StepStatusUpcoming, booking.StepStatusUpcoming,
		}
		for i, v := range views {
			assert.Equal(t, want[i], v.Status, v.Label)
			assert.Equal(t, i < 3, v.Clickable, v.Label)
		}
		assert.Equal(t, "Date & Time", views[2].Label)
	})
}

func TestWizardSelections(t *testing.T) {
	f := newFixture(t)

	t.Run("changing provider regenerates calendar and clears date and slot", func(t *testing.T) {
		w := f.toStep(t, booking.StepDetails)
		require.NoError(t, w.GoTo(booking.StepProvider))
		calls := f.calls

		require.NoError(t, w.SelectProvider(f.provider(t, 1), f.generate))
		assert.Equal(t, calls, f.calls, "same provider keeps the calendar")
		assert.Equal(t, today, w.Date())

		require.NoError(t, w.SelectProvider(f.provider(t, 2), f.generate))
		assert.Equal(t, calls+1, f.calls)
		assert.Equal(t, 2, w.Calendar().ProviderID())
		assert.Equal(t, slot.DateKey(""), w.Date())
		assert.Nil(t, w.TimeSlot())
		assert.Equal(t, booking.StepProvider, w.HighestCompleted())
		assertProgressInvariant(t, w)
	})

	t.Run("changing date clears the slot", func(t *testing.T) {
		w := f.toStep(t, booking.StepDateTime)
		require.NoError(t, w.SelectDate(today, today))
		require.NoError(t, w.SelectTimeSlot("10:00", false))

		require.NoError(t, w.SelectDate("2025-03-11", today))
		assert.Nil(t, w.TimeSlot())
	})

	t.Run("past or unknown dates are rejected", func(t *testing.T) {
		w := f.toStep(t, booking.StepDateTime)
		assert.ErrorIs(t, w.SelectDate("2025-03-10", "2025-03-11"), booking.ErrDateUnavailable)
		assert.ErrorIs(t, w.SelectDate("2025-04-01", today), booking.ErrDateUnavailable)
	})

	t.Run("locked or booked slots are not selectable", func(t *testing.T) {
		w := f.toStep(t, booking.StepDateTime)
		assert.ErrorIs(t, w.SelectTimeSlot("10:00", false), booking.ErrNoDateSelected)

		require.NoError(t, w.SelectDate(today, today))
		assert.ErrorIs(t, w.SelectTimeSlot("10:00", true), booking.ErrSlotNotSelectable)
		assert.ErrorIs(t, w.SelectTimeSlot("09:30", false), booking.ErrSlotNotSelectable)
		assert.ErrorIs(t, w.SelectTimeSlot("11:00", false), booking.ErrSlotNotFound)
		assert.Nil(t, w.TimeSlot())
	})
}

func TestWizardForms(t *testing.T) {
	f := newFixture(t)
	v := booking.NewFormValidator()

	t.Run("invalid email keeps the wizard on details", func(t *testing.T) {
		w := f.toStep(t, booking.StepDetails)
		patch := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) { b.Email = "bad-email" }).BuildPatch()
		require.NoError(t, w.EditDetails(patch))

		err := w.SubmitDetails(v)
		require.ErrorIs(t, err, booking.ErrValidationFailed)
		var verr *booking.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Please enter a valid email address", verr.Fields["email"])

		assert.Equal(t, booking.StepDetails, w.Current())
		assert.False(t, w.DetailsAccepted())
		assert.Contains(t, w.DetailsErrors(), "email")
	})

	t.Run("editing a field clears only its error", func(t *testing.T) {
		w := f.toStep(t, booking.StepDetails)
		require.Error(t, w.SubmitDetails(v))
		require.Contains(t, w.DetailsErrors(), "firstName")
		require.Contains(t, w.DetailsErrors(), "email")

		name := "Jane"
		require.NoError(t, w.EditDetails(booking.DetailsPatch{FirstName: &name}))
		assert.NotContains(t, w.DetailsErrors(), "firstName")
		assert.Contains(t, w.DetailsErrors(), "email")
	})

	t.Run("editing accepted details withdraws acceptance", func(t *testing.T) {
		w := f.toStep(t, booking.StepPayment)
		require.NoError(t, w.GoTo(booking.StepDetails))
		assert.True(t, w.DetailsAccepted())

		phone := "123"
		require.NoError(t, w.EditDetails(booking.DetailsPatch{Phone: &phone}))
		assert.False(t, w.DetailsAccepted())
		assert.ErrorIs(t, w.Advance(booking.Gate{}), booking.ErrGuardNotSatisfied)
		assertProgressInvariant(t, w)
	})

	t.Run("payment in flight blocks other changes", func(t *testing.T) {
		w := f.toStep(t, booking.StepPayment)
		require.NoError(t, w.EditPayment(builder.NewPaymentBuilder().BuildPatch()))
		require.NoError(t, w.BeginPayment(v))

		assert.True(t, w.Processing())
		assert.ErrorIs(t, w.BeginPayment(v), booking.ErrPaymentProcessing)
		assert.ErrorIs(t, w.Back(), booking.ErrPaymentProcessing)
		for _, view := range w.Progress() {
			assert.False(t, view.Clickable)
		}

		w.FailPayment("card declined")
		assert.False(t, w.Processing())
		assert.Equal(t, "card declined", w.PaymentFailure())
		assert.Equal(t, booking.StepPayment, w.Current())
	})

	t.Run("paypal needs no card data", func(t *testing.T) {
		w := f.toStep(t, booking.StepPayment)
		method := booking.PaymentMethodPayPal
		require.NoError(t, w.EditPayment(booking.PaymentPatch{Method: &method}))
		require.NoError(t, w.BeginPayment(v))
		require.NoError(t, w.CompletePayment("BK-000002"))
		assert.Equal(t, booking.StepComplete, w.Current())
		assert.Equal(t, booking.StepPayment, w.HighestCompleted())
	})

	t.Run("complete payment requires a charge in flight", func(t *testing.T) {
		w := f.toStep(t, booking.StepPayment)
		assert.ErrorIs(t, w.CompletePayment("BK-1"), booking.ErrWrongStep)
	})
}

func TestWizardSummary(t *testing.T) {
	f := newFixture(t)
	pc := booking.NewDefaultPriceCalculator()

	w := f.toStep(t, booking.StepDateTime)
	assert.Equal(t, "132.59", w.Summary(pc).Total.String(), "service price before a slot is picked")

	require.NoError(t, w.SelectDate(today, today))
	require.NoError(t, w.SelectTimeSlot("10:00", false))
	assert.Equal(t, "132.59", w.Summary(pc).Total.String())
}
