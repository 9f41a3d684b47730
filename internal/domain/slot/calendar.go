package slot

// Calendar holds the generated slots of one provider over the booking window.
type Calendar struct {
	providerID int
	dates      []DateKey
	days       map[DateKey][]TimeSlot
}

func NewCalendar(providerID int, dates []DateKey, days map[DateKey][]TimeSlot) *Calendar {
	c := &Calendar{
		providerID: providerID,
		dates:      append([]DateKey(nil), dates...),
		days:       make(map[DateKey][]TimeSlot, len(days)),
	}
	for d, slots := range days {
		c.days[d] = append([]TimeSlot(nil), slots...)
	}
	return c
}

func (c *Calendar) ProviderID() int { return c.providerID }

// Dates returns the window in chronological order.
func (c *Calendar) Dates() []DateKey {
	return append([]DateKey(nil), c.dates...)
}

func (c *Calendar) Contains(d DateKey) bool {
	_, ok := c.days[d]
	return ok
}

func (c *Calendar) Slots(d DateKey) []TimeSlot {
	return append([]TimeSlot(nil), c.days[d]...)
}

func (c *Calendar) Find(d DateKey, hhmm string) (TimeSlot, bool) {
	for _, s := range c.days[d] {
		if s.time == hhmm {
			return s, true
		}
	}
	return TimeSlot{}, false
}

func (c *Calendar) AvailableCount(d DateKey) int {
	n := 0
	for _, s := range c.days[d] {
		if s.available {
			n++
		}
	}
	return n
}

func (c *Calendar) HasAvailable(d DateKey) bool {
	return c.AvailableCount(d) > 0
}

// PickRandom chooses a date uniformly, then a slot of that date uniformly.
// ok is false when the chosen date has no slots.
func (c *Calendar) PickRandom(rnd RandSource) (DateKey, TimeSlot, bool) {
	if len(c.dates) == 0 {
		return "", TimeSlot{}, false
	}
	d := c.dates[rnd.IntN(len(c.dates))]
	slots := c.days[d]
	if len(slots) == 0 {
		return d, TimeSlot{}, false
	}
	return d, slots[rnd.IntN(len(slots))], true
}
