package booking

import "errors"

var (
	ErrWrongStep           = errors.New("operation not allowed on the current step")
	ErrGuardNotSatisfied   = errors.New("current step is not complete")
	ErrForwardJump         = errors.New("cannot jump forward to a later step")
	ErrInvalidStep         = errors.New("step out of range")
	ErrWizardComplete      = errors.New("booking is already complete")
	ErrPaymentProcessing   = errors.New("payment is being processed")
	ErrNoCalendar          = errors.New("no provider selected")
	ErrDateUnavailable     = errors.New("date has no available slots")
	ErrSlotNotFound        = errors.New("time slot not found")
	ErrSlotNotSelectable   = errors.New("time slot is not available")
	ErrNoDateSelected      = errors.New("no date selected")
	ErrValidationFailed    = errors.New("form validation failed")
	ErrEmptyRecordID       = errors.New("booking id cannot be empty")
	ErrInvalidPayment      = errors.New("invalid payment method")
	ErrUnknownConfirmation = errors.New("unknown confirmation status")
)

// FieldErrors maps a form field (JSON name) to its message.
type FieldErrors map[string]string

func (e FieldErrors) Empty() bool { return len(e) == 0 }

func (e FieldErrors) clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// ValidationError carries the complete error map of a rejected submit.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
