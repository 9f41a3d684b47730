package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Lookup errors
	ErrSessionNotFound  = errors.New("session not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrProviderNotFound = errors.New("provider not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrDateNotFound     = errors.New("date not found")

	// Wizard errors
	ErrStepConflict     = errors.New("step conflict")
	ErrSlotUnavailable  = errors.New("slot unavailable")
	ErrPaymentInFlight  = errors.New("payment in progress")
	ErrPaymentDeclined  = errors.New("payment declined")
	ErrPaymentGateway   = errors.New("payment gateway failure")
	ErrInvalidParameter = errors.New("invalid parameter")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
