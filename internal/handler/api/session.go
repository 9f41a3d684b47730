package api

import (
	"context"
	"net/http"
	"strconv"

	"booking-flow/internal/domain/booking"
	reqdto "booking-flow/internal/handler/dto/request"
	resdto "booking-flow/internal/handler/dto/response"
	"booking-flow/internal/handler/httperr"
	"booking-flow/internal/usecase/commands"
	"booking-flow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	cmds commands.WizardCommands
	q    queries.WizardQueries
}

func NewSessionHandler(cmds commands.WizardCommands, q queries.WizardQueries) *SessionHandler {
	return &SessionHandler{cmds: cmds, q: q}
}

// respondSession renders the session after a successful command.
func (h *SessionHandler) respondSession(c *gin.Context, status int, id string) {
	view, err := h.q.GetSession(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromSessionView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render session", nil)
		return
	}
	c.JSON(status, res)
}

// run executes one command against the session in the path and renders the result.
func (h *SessionHandler) run(c *gin.Context, cmd func(ctx context.Context, id string) error) {
	id := c.Param("id")
	if err := cmd(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.respondSession(c, http.StatusOK, id)
}

// @Summary Start session
// @Description Start a booking wizard session on the service step
// @Tags sessions
// @Produce json
// @Success 201 {object} resdto.SessionResponse
// @Failure 500 {object} httperr.Response
// @Router /api/sessions [post]
func (h *SessionHandler) Start(c *gin.Context) {
	id, err := h.cmds.StartSession(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/sessions/"+id)
	h.respondSession(c, http.StatusCreated, id)
}

// @Summary Get session
// @Description Wizard state: steps, selection, summary and form errors
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	h.respondSession(c, http.StatusOK, c.Param("id"))
}

// @Summary End session
// @Description End the session and cancel its pending tasks and in-flight payment
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/sessions/{id} [delete]
func (h *SessionHandler) End(c *gin.Context) {
	if err := h.cmds.EndSession(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Select service
// @Description Pick a service on step 1; the wizard moves on after a short delay
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectServiceRequest true "Service selection"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/sessions/{id}/service [post]
func (h *SessionHandler) SelectService(c *gin.Context) {
	var req reqdto.SelectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.run(c, func(ctx context.Context, id string) error {
		return h.cmds.SelectService(ctx, id, req.ServiceID)
	})
}

// @Summary Select provider
// @Description Pick a provider on step 2; a new provider regenerates the calendar
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectProviderRequest true "Provider selection"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/sessions/{id}/provider [post]
func (h *SessionHandler) SelectProvider(c *gin.Context) {
	var req reqdto.SelectProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.run(c, func(ctx context.Context, id string) error {
		return h.cmds.SelectProvider(ctx, id, req.ProviderID)
	})
}

// @Summary Calendar month
// @Description Month grid over the session's generated calendar
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param month query string false "Month as YYYY-MM (default: current month)"
// @Success 200 {object} resdto.CalendarMonthResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/sessions/{id}/calendar [get]
func (h *SessionHandler) CalendarMonth(c *gin.Context) {
	var query reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	view, err := h.q.GetCalendarMonth(c.Request.Context(), c.Param("id"), query.MonthOrCurrent())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendarMonthView(view))
}

// @Summary Day slots
// @Description Time slots of one date with their live status
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param date path string true "Date as YYYY-MM-DD"
// @Success 200 {object} resdto.DaySlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/sessions/{id}/calendar/{date} [get]
func (h *SessionHandler) DaySlots(c *gin.Context) {
	view, err := h.q.GetDaySlots(c.Request.Context(), c.Param("id"), c.Param("date"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDaySlotsView(view))
}

// @Summary Select date
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectDateRequest true "Date selection"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/sessions/{id}/date [post]
func (h *SessionHandler) SelectDate(c *gin.Context) {
	var req reqdto.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.run(c, func(ctx context.Context, id string) error {
		return h.cmds.SelectDate(ctx, id, req.Date)
	})
}

// @Summary Select time slot
// @Description Pick a time of the selected date; locked or booked slots are rejected
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.SelectTimeSlotRequest true "Time slot selection"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/sessions/{id}/slot [post]
func (h *SessionHandler) SelectTimeSlot(c *gin.Context) {
	var req reqdto.SelectTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.run(c, func(ctx context.Context, id string) error {
		return h.cmds.SelectTimeSlot(ctx, id, req.Time)
	})
}

// @Summary Edit details
// @Description Partial update of the details form; edited fields lose their error
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.UpdateDetailsRequest true "Changed fields"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/sessions/{id}/details [patch]
func (h *SessionHandler) EditDetails(c *gin.Context) {
	var req reqdto.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.run(c, func(ctx context.Context, id string) error {
		return h.cmds.EditDetails(ctx, id, req.ToDomain())
	})
}

// @Summary Submit details
// @Description Validate the details form and continue to payment
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/sessions/{id}/details [post]
func (h *SessionHandler) SubmitDetails(c *gin.Context) {
	h.run(c, h.cmds.SubmitDetails)
}

// @Summary Edit payment
// @Description Partial update of the payment form; card fields are formatted as typed
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.UpdatePaymentRequest true "Changed fields"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/sessions/{id}/payment [patch]
func (h *SessionHandler) EditPayment(c *gin.Context) {
	var req reqdto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	h.run(c, func(ctx context.Context, id string) error {
		return h.cmds.EditPayment(ctx, id, req.ToDomain())
	})
}

// @Summary Submit payment
// @Description Validate the payment form, run the simulated charge and confirm the booking
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/sessions/{id}/payment [post]
func (h *SessionHandler) SubmitPayment(c *gin.Context) {
	result, err := h.cmds.SubmitPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+result.BookingID)
	c.JSON(http.StatusCreated, resdto.FromPaymentResult(result))
}

// @Summary Next step
// @Description Explicit forward action; on the details step it submits the form
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/sessions/{id}/next [post]
func (h *SessionHandler) Next(c *gin.Context) {
	h.run(c, h.cmds.Next)
}

// @Summary Previous step
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/sessions/{id}/back [post]
func (h *SessionHandler) Back(c *gin.Context) {
	h.run(c, h.cmds.Back)
}

// @Summary Go to step
// @Description Progress indicator navigation to the current or an earlier step
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param step path int true "Step number (1-5)"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/sessions/{id}/steps/{step} [post]
func (h *SessionHandler) GoToStep(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil || step < int(booking.StepService) || step > int(booking.StepPayment) {
		if err == nil {
			err = booking.ErrInvalidStep
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid step", nil)
		return
	}
	h.run(c, func(ctx context.Context, id string) error {
		return h.cmds.GoToStep(ctx, id, step)
	})
}

// @Summary Price summary
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SummaryResponse
// @Failure 404 {object} httperr.Response
// @Router /api/sessions/{id}/summary [get]
func (h *SessionHandler) Summary(c *gin.Context) {
	view, err := h.q.GetSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummaryView(view))
}
