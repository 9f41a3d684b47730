package booking

import (
	"booking-flow/internal/domain/catalog"
	"booking-flow/internal/domain/slot"
)

// Gate carries facts the wizard cannot know by itself when checking the
// current step's guard.
type Gate struct {
	SlotLocked bool
}

// Wizard is the state of one booking flow. It only ever moves forward through
// a satisfied guard, one step at a time, so current <= highestCompleted+1 holds
// after every operation.
type Wizard struct {
	current          Step
	highestCompleted Step

	service  *catalog.Service
	provider *catalog.Provider
	calendar *slot.Calendar
	date     slot.DateKey
	timeSlot *slot.TimeSlot

	details         CustomerDetails
	detailsErrors   FieldErrors
	detailsAccepted bool

	payment        PaymentDetails
	paymentErrors  FieldErrors
	paymentFailure string
	processing     bool

	bookingID string
}

func NewWizard() *Wizard {
	return &Wizard{
		current:       StepService,
		detailsErrors: FieldErrors{},
		payment:       NewPaymentDetails(),
		paymentErrors: FieldErrors{},
	}
}

func (w *Wizard) mutable() error {
	if w.current == StepComplete {
		return ErrWizardComplete
	}
	if w.processing {
		return ErrPaymentProcessing
	}
	return nil
}

func (w *Wizard) requireStep(s Step) error {
	if err := w.mutable(); err != nil {
		return err
	}
	if w.current != s {
		return ErrWrongStep
	}
	return nil
}

func (w *Wizard) capCompleted(s Step) {
	if w.highestCompleted > s {
		w.highestCompleted = s
	}
}

func (w *Wizard) complete(s Step) {
	if w.highestCompleted < s {
		w.highestCompleted = s
	}
}

func (w *Wizard) SelectService(s *catalog.Service) error {
	if err := w.requireStep(StepService); err != nil {
		return err
	}
	w.service = s
	return nil
}

// SelectProvider picks p and, when the provider changes, replaces the
// calendar with a freshly generated one and drops the date and slot.
func (w *Wizard) SelectProvider(p *catalog.Provider, generate func(*catalog.Provider) *slot.Calendar) error {
	if err := w.requireStep(StepProvider); err != nil {
		return err
	}
	if w.provider != nil && w.provider.ID() == p.ID() && w.calendar != nil {
		return nil
	}
	w.provider = p
	w.calendar = generate(p)
	w.date = ""
	w.timeSlot = nil
	w.capCompleted(StepProvider)
	return nil
}

// SelectDate accepts a date of the calendar on or after today that still has
// an available slot. A different date drops the selected slot.
func (w *Wizard) SelectDate(d, today slot.DateKey) error {
	if err := w.requireStep(StepDateTime); err != nil {
		return err
	}
	if w.calendar == nil {
		return ErrNoCalendar
	}
	if !w.calendar.Contains(d) || d < today || !w.calendar.HasAvailable(d) {
		return ErrDateUnavailable
	}
	if d != w.date {
		w.date = d
		w.timeSlot = nil
		w.capCompleted(StepProvider)
	}
	return nil
}

func (w *Wizard) SelectTimeSlot(hhmm string, locked bool) error {
	if err := w.requireStep(StepDateTime); err != nil {
		return err
	}
	if w.date == "" {
		return ErrNoDateSelected
	}
	s, ok := w.calendar.Find(w.date, hhmm)
	if !ok {
		return ErrSlotNotFound
	}
	if !slot.StatusOf(s, locked).Selectable() {
		return ErrSlotNotSelectable
	}
	w.timeSlot = &s
	return nil
}

func (w *Wizard) guard(g Gate) error {
	switch w.current {
	case StepService:
		if w.service == nil {
			return ErrGuardNotSatisfied
		}
	case StepProvider:
		if w.provider == nil {
			return ErrGuardNotSatisfied
		}
	case StepDateTime:
		if w.date == "" || w.timeSlot == nil {
			return ErrGuardNotSatisfied
		}
		if !slot.StatusOf(*w.timeSlot, g.SlotLocked).Selectable() {
			return ErrSlotNotSelectable
		}
	case StepDetails:
		if !w.detailsAccepted {
			return ErrGuardNotSatisfied
		}
	default:
		// payment moves on through BeginPayment/CompletePayment only
		return ErrWrongStep
	}
	return nil
}

// Advance moves exactly one step forward when the current step's guard holds.
func (w *Wizard) Advance(g Gate) error {
	if err := w.mutable(); err != nil {
		return err
	}
	if err := w.guard(g); err != nil {
		return err
	}
	w.complete(w.current)
	w.current++
	return nil
}

// CanAdvance reports whether Advance would succeed.
func (w *Wizard) CanAdvance(g Gate) bool {
	return w.mutable() == nil && w.guard(g) == nil
}

func (w *Wizard) Back() error {
	if err := w.mutable(); err != nil {
		return err
	}
	if w.current == StepService {
		return ErrInvalidStep
	}
	w.current--
	return nil
}

// GoTo navigates to any step up to and including the current one.
func (w *Wizard) GoTo(s Step) error {
	if err := w.mutable(); err != nil {
		return err
	}
	if !s.Valid() {
		return ErrInvalidStep
	}
	if s > w.current {
		return ErrForwardJump
	}
	w.current = s
	return nil
}

// EditDetails updates the draft and clears the errors of the edited fields.
// Any edit withdraws a previous acceptance.
func (w *Wizard) EditDetails(p DetailsPatch) error {
	if err := w.requireStep(StepDetails); err != nil {
		return err
	}
	var edited []string
	w.details, edited = w.details.apply(p)
	for _, f := range edited {
		delete(w.detailsErrors, f)
	}
	if len(edited) > 0 {
		w.detailsAccepted = false
		w.capCompleted(StepDateTime)
	}
	return nil
}

// SubmitDetails recomputes the whole error map; on success the details are
// accepted and the wizard advances to payment.
func (w *Wizard) SubmitDetails(v Validator) error {
	if err := w.requireStep(StepDetails); err != nil {
		return err
	}
	errs := v.ValidateDetails(w.details)
	w.detailsErrors = errs
	if !errs.Empty() {
		w.detailsAccepted = false
		return &ValidationError{Fields: errs.clone()}
	}
	w.detailsAccepted = true
	w.complete(StepDetails)
	w.current = StepPayment
	return nil
}

func (w *Wizard) EditPayment(p PaymentPatch) error {
	if err := w.requireStep(StepPayment); err != nil {
		return err
	}
	var edited []string
	w.payment, edited = w.payment.apply(p)
	if p.Method != nil {
		w.paymentErrors = FieldErrors{}
	}
	for _, f := range edited {
		delete(w.paymentErrors, f)
	}
	w.paymentFailure = ""
	return nil
}

// BeginPayment validates the payment form and marks the wizard as processing.
// Until CompletePayment or FailPayment every other mutation is rejected.
func (w *Wizard) BeginPayment(v Validator) error {
	if err := w.requireStep(StepPayment); err != nil {
		return err
	}
	errs := v.ValidatePayment(w.payment)
	w.paymentErrors = errs
	if !errs.Empty() {
		return &ValidationError{Fields: errs.clone()}
	}
	w.processing = true
	w.paymentFailure = ""
	return nil
}

func (w *Wizard) CompletePayment(bookingID string) error {
	if !w.processing {
		return ErrWrongStep
	}
	w.processing = false
	w.bookingID = bookingID
	w.complete(StepPayment)
	w.current = StepComplete
	return nil
}

func (w *Wizard) FailPayment(reason string) {
	w.processing = false
	w.paymentFailure = reason
}

func (w *Wizard) Progress() []StepView {
	views := make([]StepView, 0, len(IndicatorSteps))
	for _, s := range IndicatorSteps {
		status := StepStatusUpcoming
		switch {
		case w.current == StepComplete || s < w.current:
			status = StepStatusCompleted
		case s == w.current:
			status = StepStatusCurrent
		}
		views = append(views, StepView{
			Step:      s,
			Label:     s.Label(),
			Status:    status,
			Clickable: s <= w.current && w.current != StepComplete && !w.processing,
		})
	}
	return views
}

// Summary prices the current selection.
func (w *Wizard) Summary(pc PriceCalculator) Breakdown {
	return pc.Calculate(w.service, w.timeSlot)
}

func (w *Wizard) Current() Step               { return w.current }
func (w *Wizard) HighestCompleted() Step      { return w.highestCompleted }
func (w *Wizard) Service() *catalog.Service   { return w.service }
func (w *Wizard) Provider() *catalog.Provider { return w.provider }
func (w *Wizard) Calendar() *slot.Calendar    { return w.calendar }
func (w *Wizard) Date() slot.DateKey          { return w.date }
func (w *Wizard) Details() CustomerDetails    { return w.details }
func (w *Wizard) DetailsErrors() FieldErrors  { return w.detailsErrors.clone() }
func (w *Wizard) DetailsAccepted() bool       { return w.detailsAccepted }
func (w *Wizard) Payment() PaymentDetails     { return w.payment }
func (w *Wizard) PaymentErrors() FieldErrors  { return w.paymentErrors.clone() }
func (w *Wizard) PaymentFailure() string      { return w.paymentFailure }
func (w *Wizard) Processing() bool            { return w.processing }
func (w *Wizard) BookingID() string           { return w.bookingID }
func (w *Wizard) IsComplete() bool            { return w.current == StepComplete }

func (w *Wizard) TimeSlot() *slot.TimeSlot {
	if w.timeSlot == nil {
		return nil
	}
	s := *w.timeSlot
	return &s
}
