package slot

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"booking-flow/internal/pkg/money"
)

var (
	ErrInvalidDateKey = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTime    = errors.New("time must be formatted as HH:MM")
)

const DateLayout = "2006-01-02"

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// DateKey is a calendar date in ISO form, e.g. "2025-03-10".
type DateKey string

func NewDateKey(t time.Time) DateKey {
	return DateKey(t.Format(DateLayout))
}

func ParseDateKey(s string) (DateKey, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", ErrInvalidDateKey
	}
	return DateKey(s), nil
}

// In returns midnight of the date in loc.
func (d DateKey) In(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, string(d), loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateKey
	}
	return t, nil
}

func (d DateKey) String() string { return string(d) }

type TimeSlot struct {
	time      string
	available bool
	price     money.Money
}

func NewTimeSlot(hhmm string, available bool, price money.Money) (TimeSlot, error) {
	if !timePattern.MatchString(hhmm) {
		return TimeSlot{}, ErrInvalidTime
	}
	return TimeSlot{time: hhmm, available: available, price: price}, nil
}

func (s TimeSlot) Time() string       { return s.time }
func (s TimeSlot) Available() bool    { return s.available }
func (s TimeSlot) Price() money.Money { return s.price }

// At combines the slot time with date d in loc.
func (s TimeSlot) At(d DateKey, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" 15:04", string(d)+" "+s.time, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusLocked      Status = "locked"
	StatusUnavailable Status = "unavailable"
)

// StatusOf resolves the display status of a slot. A lock wins over the
// generated availability.
func StatusOf(s TimeSlot, locked bool) Status {
	switch {
	case locked:
		return StatusLocked
	case s.available:
		return StatusAvailable
	default:
		return StatusUnavailable
	}
}

func (s Status) Selectable() bool {
	return s == StatusAvailable
}

// LockKey identifies a slot across sessions: provider + date + time.
func LockKey(providerID int, date DateKey, hhmm string) string {
	return fmt.Sprintf("%d:%s-%s", providerID, date, hhmm)
}
