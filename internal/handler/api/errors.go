package api

import (
	"net/http"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/handler/httperr"
	"booking-flow/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// errorMappings is checked in order; the first marker found decides the status.
var errorMappings = []errorMapping{
	{errs.ErrSessionNotFound, http.StatusNotFound, "Session not found"},
	{errs.ErrServiceNotFound, http.StatusNotFound, "Service not found"},
	{errs.ErrProviderNotFound, http.StatusNotFound, "Provider not found"},
	{errs.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{errs.ErrDateNotFound, http.StatusNotFound, "Date is not part of the calendar"},
	{errs.ErrPaymentInFlight, http.StatusConflict, "Payment is being processed"},
	{errs.ErrSlotUnavailable, http.StatusConflict, "Time slot is not available"},
	{errs.ErrStepConflict, http.StatusConflict, "Action not allowed on the current step"},
	{errs.ErrInvalidParameter, http.StatusBadRequest, "Invalid parameter"},
	{errs.ErrPaymentDeclined, http.StatusPaymentRequired, "Payment declined"},
	{errs.ErrPaymentGateway, http.StatusBadGateway, "Payment failed"},
	{errs.ErrDatabaseOperationFailed, http.StatusInternalServerError, "Internal server error"},
}

// abortWithUseCaseError maps a use case error to its HTTP status. Validation
// failures carry the field error map in detail; conflicts carry the reason.
func abortWithUseCaseError(c *gin.Context, err error) {
	var ve *booking.ValidationError
	if errs.Is(err, errs.ErrDomainValidation) && errs.As(err, &ve) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", httperr.Fields(ve.Fields))
		return
	}
	for _, m := range errorMappings {
		if !errs.Is(err, m.target) {
			continue
		}
		var detail any
		if m.status == http.StatusConflict || m.status == http.StatusBadRequest {
			detail = httperr.Reason(errs.Cause(err))
		}
		httperr.AbortWithError(c, m.status, err, m.msg, detail)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
