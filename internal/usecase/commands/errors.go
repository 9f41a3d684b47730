package commands

import (
	"errors"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/domain/catalog"
	"booking-flow/internal/domain/slot"
	"booking-flow/internal/pkg/errs"
	"booking-flow/internal/usecase/shared"
)

// Classify marks domain errors with the category the handler layer maps to a
// status code. Unknown errors pass through unchanged.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, booking.ErrValidationFailed):
		return errs.Mark(err, errs.ErrDomainValidation)
	case errors.Is(err, booking.ErrPaymentProcessing):
		return errs.Mark(err, errs.ErrPaymentInFlight)
	case errors.Is(err, booking.ErrWrongStep),
		errors.Is(err, booking.ErrGuardNotSatisfied),
		errors.Is(err, booking.ErrForwardJump),
		errors.Is(err, booking.ErrWizardComplete),
		errors.Is(err, booking.ErrNoCalendar),
		errors.Is(err, booking.ErrNoDateSelected):
		return errs.Mark(err, errs.ErrStepConflict)
	case errors.Is(err, booking.ErrDateUnavailable),
		errors.Is(err, booking.ErrSlotNotFound),
		errors.Is(err, booking.ErrSlotNotSelectable):
		return errs.Mark(err, errs.ErrSlotUnavailable)
	case errors.Is(err, booking.ErrInvalidStep),
		errors.Is(err, slot.ErrInvalidDateKey),
		errors.Is(err, slot.ErrInvalidTime):
		return errs.Mark(err, errs.ErrInvalidParameter)
	case errors.Is(err, catalog.ErrServiceNotFound):
		return errs.Mark(err, errs.ErrServiceNotFound)
	case errors.Is(err, catalog.ErrProviderNotFound):
		return errs.Mark(err, errs.ErrProviderNotFound)
	case errors.Is(err, shared.ErrSessionClosed):
		return errs.Mark(err, errs.ErrSessionNotFound)
	}
	return err
}
