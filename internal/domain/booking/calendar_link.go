package booking

import (
	"fmt"
	"net/url"
	"time"
)

const (
	calendarBaseURL       = "https://calendar.google.com/calendar/render"
	calendarEventDuration = 60 * time.Minute
	calendarTimeLayout    = "20060102T150405Z"
)

// CalendarLink builds a Google Calendar template link for the appointment.
// Slot times are interpreted in loc.
func CalendarLink(r *Record, loc *time.Location) (string, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", r.date.String()+" "+r.time, loc)
	if err != nil {
		return "", err
	}
	end := start.Add(calendarEventDuration)

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", fmt.Sprintf("%s - %s", r.serviceName, r.providerName))
	q.Set("dates", start.UTC().Format(calendarTimeLayout)+"/"+end.UTC().Format(calendarTimeLayout))
	q.Set("details", fmt.Sprintf("Appointment with %s\nService: %s\nLocation: %s", r.providerName, r.serviceName, r.providerLocation))
	return calendarBaseURL + "?" + q.Encode(), nil
}

func ShareText(r *Record) string {
	day, err := time.Parse("2006-01-02", r.date.String())
	if err != nil {
		return fmt.Sprintf("Appointment booked with %s on %s at %s", r.providerName, r.date, r.time)
	}
	return fmt.Sprintf("Appointment booked with %s on %s at %s", r.providerName, day.Format("Monday, January 2, 2006"), r.time)
}
