package queries

import (
	"context"
	"time"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/domain/slot"
	"booking-flow/internal/pkg/clock"
	"booking-flow/internal/pkg/errs"
	"booking-flow/internal/usecase/shared"
)

const monthLayout = "2006-01"

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type SessionReadStore interface {
	Get(id string) (*shared.Session, bool)
}

type SlotLockReader interface {
	LockedAmong(ctx context.Context, keys []string) (map[string]bool, error)
}

type WizardQueries interface {
	GetSession(ctx context.Context, sessionID string) (*SessionView, error)
	GetSummary(ctx context.Context, sessionID string) (*SummaryView, error)
	GetCalendarMonth(ctx context.Context, sessionID string, month string) (*CalendarMonthView, error)
	GetDaySlots(ctx context.Context, sessionID string, date string) (*DaySlotsView, error)
}

type wizardQueriesImpl struct {
	sessions SessionReadStore
	locks    SlotLockReader
	pricing  booking.PriceCalculator
	clock    clock.Clock
	loc      *time.Location
}

func NewWizardQueries(
	sessions SessionReadStore,
	locks SlotLockReader,
	pricing booking.PriceCalculator,
	clock clock.Clock,
	loc *time.Location,
) WizardQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &wizardQueriesImpl{
		sessions: sessions,
		locks:    locks,
		pricing:  pricing,
		clock:    clock,
		loc:      loc,
	}
}

func (q *wizardQueriesImpl) session(id string) (*shared.Session, error) {
	s, ok := q.sessions.Get(id)
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	return s, nil
}

func (q *wizardQueriesImpl) GetSession(ctx context.Context, sessionID string) (*SessionView, error) {
	s, err := q.session(sessionID)
	if err != nil {
		return nil, err
	}

	var (
		view       *SessionView
		ts         *slot.TimeSlot
		lockKey    string
		canFree    bool
		canIfTaken bool
	)
	s.View(func(w *booking.Wizard) {
		view = &SessionView{
			ID:               sessionID,
			CurrentStep:      int(w.Current()),
			CurrentLabel:     w.Current().Label(),
			HighestCompleted: int(w.HighestCompleted()),
			Steps:            toStepViews(w.Progress()),
			Date:             w.Date().String(),
			Details:          toDetailsView(w.Details()),
			DetailsErrors:    w.DetailsErrors(),
			DetailsAccepted:  w.DetailsAccepted(),
			Payment:          toPaymentDraftView(w.Payment()),
			PaymentErrors:    w.PaymentErrors(),
			PaymentFailure:   w.PaymentFailure(),
			Processing:       w.Processing(),
			BookingID:        w.BookingID(),
		}
		if svc := w.Service(); svc != nil {
			view.Service = toServiceView(svc)
			summary := toSummaryView(w.Summary(q.pricing))
			view.Summary = &summary
		}
		if p := w.Provider(); p != nil {
			view.Provider = toProviderView(p)
		}
		if ts = w.TimeSlot(); ts != nil {
			lockKey = slot.LockKey(w.Provider().ID(), w.Date(), ts.Time())
		}
		canFree = w.CanAdvance(booking.Gate{})
		canIfTaken = w.CanAdvance(booking.Gate{SlotLocked: true})
	})

	// the lock store is read after the session is released
	view.CanProceed = canFree
	if ts != nil {
		locked, err := q.locks.LockedAmong(ctx, []string{lockKey})
		if err != nil {
			return nil, errs.Wrap(err, "read slot lock")
		}
		taken := locked[lockKey]
		if taken {
			view.CanProceed = canIfTaken
		}
		view.TimeSlot = &SlotView{
			Time:       ts.Time(),
			Price:      ts.Price().String(),
			PriceCents: ts.Price().Cents(),
			Status:     string(slot.StatusOf(*ts, taken)),
			Selected:   true,
		}
	}
	return view, nil
}

func (q *wizardQueriesImpl) GetSummary(_ context.Context, sessionID string) (*SummaryView, error) {
	s, err := q.session(sessionID)
	if err != nil {
		return nil, err
	}
	var b booking.Breakdown
	s.View(func(w *booking.Wizard) { b = w.Summary(q.pricing) })
	summary := toSummaryView(b)
	return &summary, nil
}

// GetCalendarMonth lays out month (YYYY-MM, default: the current month) as a
// Sunday-first grid over the session's generated calendar.
func (q *wizardQueriesImpl) GetCalendarMonth(_ context.Context, sessionID string, month string) (*CalendarMonthView, error) {
	s, err := q.session(sessionID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now().In(q.loc)
	today := slot.NewDateKey(now)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, q.loc)
	if month != "" {
		first, err = time.ParseInLocation(monthLayout, month, q.loc)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "month must be formatted as YYYY-MM"), errs.ErrInvalidParameter)
		}
	}

	var (
		cal      *slot.Calendar
		selected slot.DateKey
	)
	s.View(func(w *booking.Wizard) {
		cal = w.Calendar()
		selected = w.Date()
	})
	if cal == nil {
		return nil, errs.Mark(booking.ErrNoCalendar, errs.ErrStepConflict)
	}

	lead := int(first.Weekday())
	cells := make([]*DayCell, lead, lead+31)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		key := slot.NewDateKey(d)
		past := key < today
		count := 0
		if cal.Contains(key) {
			count = cal.AvailableCount(key)
		}
		cells = append(cells, &DayCell{
			Date:      key.String(),
			Day:       d.Day(),
			Available: !past && count > 0,
			SlotCount: count,
			Today:     key == today,
			Past:      past,
			Selected:  key == selected,
		})
	}

	return &CalendarMonthView{
		Month:     first.Format(monthLayout),
		Label:     first.Format("January 2006"),
		PrevMonth: first.AddDate(0, -1, 0).Format(monthLayout),
		NextMonth: first.AddDate(0, 1, 0).Format(monthLayout),
		Weekdays:  weekdays,
		Cells:     cells,
	}, nil
}

func (q *wizardQueriesImpl) GetDaySlots(ctx context.Context, sessionID string, date string) (*DaySlotsView, error) {
	s, err := q.session(sessionID)
	if err != nil {
		return nil, err
	}
	d, err := slot.ParseDateKey(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidParameter)
	}

	var (
		cal          *slot.Calendar
		selectedDate slot.DateKey
		selectedTime string
	)
	s.View(func(w *booking.Wizard) {
		cal = w.Calendar()
		selectedDate = w.Date()
		if ts := w.TimeSlot(); ts != nil {
			selectedTime = ts.Time()
		}
	})
	if cal == nil {
		return nil, errs.Mark(booking.ErrNoCalendar, errs.ErrStepConflict)
	}
	if !cal.Contains(d) {
		return nil, errs.ErrDateNotFound
	}

	slots := cal.Slots(d)
	keys := make([]string, len(slots))
	for i, ts := range slots {
		keys[i] = slot.LockKey(cal.ProviderID(), d, ts.Time())
	}
	locked, err := q.locks.LockedAmong(ctx, keys)
	if err != nil {
		return nil, errs.Wrap(err, "read slot locks")
	}

	view := &DaySlotsView{Date: d.String(), Slots: make([]SlotView, 0, len(slots))}
	for i, ts := range slots {
		view.Slots = append(view.Slots, SlotView{
			Time:       ts.Time(),
			Price:      ts.Price().String(),
			PriceCents: ts.Price().Cents(),
			Status:     string(slot.StatusOf(ts, locked[keys[i]])),
			Selected:   d == selectedDate && ts.Time() == selectedTime,
		})
	}
	return view, nil
}
