package response

import (
	"booking-flow/internal/usecase/commands"
	"booking-flow/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type StepResponse struct {
	Step      int    `json:"step"`
	Label     string `json:"label"`
	Status    string `json:"status" enums:"completed,current,upcoming"`
	Clickable bool   `json:"clickable"`
}

type SlotResponse struct {
	Time       string `json:"time" example:"10:00"`
	Price      string `json:"price" example:"120.00"`
	PriceCents int64  `json:"priceCents"`
	Status     string `json:"status" enums:"available,locked,unavailable"`
	Selected   bool   `json:"selected"`
}

type SummaryResponse struct {
	Subtotal    string `json:"subtotal" example:"120.00"`
	Tax         string `json:"tax" example:"9.60"`
	PlatformFee string `json:"platformFee" example:"2.99"`
	Total       string `json:"total" example:"132.59"`
	TotalCents  int64  `json:"totalCents" example:"13259"`
}

type DetailsResponse struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests"`
	MarketingEmails bool   `json:"marketingEmails"`
	TermsAccepted   bool   `json:"termsAccepted"`
}

type PaymentDraftResponse struct {
	Method            string `json:"method" enums:"card,paypal,apple_pay"`
	CardNumber        string `json:"cardNumber" example:"**** **** **** 4242"`
	ExpiryDate        string `json:"expiryDate"`
	CVVProvided       bool   `json:"cvvProvided"`
	CardholderName    string `json:"cardholderName"`
	Street            string `json:"street"`
	City              string `json:"city"`
	State             string `json:"state"`
	ZipCode           string `json:"zipCode"`
	Country           string `json:"country"`
	SavePaymentMethod bool   `json:"savePaymentMethod"`
}

type SessionResponse struct {
	ID               string               `json:"id"`
	CurrentStep      int                  `json:"currentStep"`
	CurrentLabel     string               `json:"currentLabel"`
	HighestCompleted int                  `json:"highestCompletedStep"`
	Steps            []StepResponse       `json:"steps"`
	Service          *ServiceResponse     `json:"service,omitempty"`
	Provider         *ProviderResponse    `json:"provider,omitempty"`
	Date             string               `json:"date,omitempty"`
	TimeSlot         *SlotResponse        `json:"timeSlot,omitempty"`
	Details          DetailsResponse      `json:"details"`
	DetailsErrors    map[string]string    `json:"detailsErrors"`
	DetailsAccepted  bool                 `json:"detailsAccepted"`
	Payment          PaymentDraftResponse `json:"payment"`
	PaymentErrors    map[string]string    `json:"paymentErrors"`
	PaymentFailure   string               `json:"paymentFailure,omitempty"`
	Processing       bool                 `json:"processing"`
	Summary          *SummaryResponse     `json:"summary,omitempty"`
	CanProceed       bool                 `json:"canProceed"`
	BookingID        string               `json:"bookingId,omitempty"`
}

func FromSessionView(v *queries.SessionView) (*SessionResponse, error) {
	var res SessionResponse
	if err := copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromSummaryView(v *queries.SummaryView) *SummaryResponse {
	return &SummaryResponse{
		Subtotal:    v.Subtotal,
		Tax:         v.Tax,
		PlatformFee: v.PlatformFee,
		Total:       v.Total,
		TotalCents:  v.TotalCents,
	}
}

// DayCellResponse is null for the blank cells before the first day of the month.
type DayCellResponse struct {
	Date      string `json:"date" example:"2025-03-10"`
	Day       int    `json:"day"`
	Available bool   `json:"available"`
	SlotCount int    `json:"slotCount"`
	Today     bool   `json:"today"`
	Past      bool   `json:"past"`
	Selected  bool   `json:"selected"`
}

type CalendarMonthResponse struct {
	Month     string             `json:"month" example:"2025-03"`
	Label     string             `json:"label" example:"March 2025"`
	PrevMonth string             `json:"prevMonth"`
	NextMonth string             `json:"nextMonth"`
	Weekdays  []string           `json:"weekdays"`
	Cells     []*DayCellResponse `json:"cells"`
}

func FromCalendarMonthView(v *queries.CalendarMonthView) *CalendarMonthResponse {
	cells := make([]*DayCellResponse, len(v.Cells))
	for i, c := range v.Cells {
		if c == nil {
			continue
		}
		cells[i] = &DayCellResponse{
			Date:      c.Date,
			Day:       c.Day,
			Available: c.Available,
			SlotCount: c.SlotCount,
			Today:     c.Today,
			Past:      c.Past,
			Selected:  c.Selected,
		}
	}
	return &CalendarMonthResponse{
		Month:     v.Month,
		Label:     v.Label,
		PrevMonth: v.PrevMonth,
		NextMonth: v.NextMonth,
		Weekdays:  append([]string(nil), v.Weekdays...),
		Cells:     cells,
	}
}

type DaySlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func FromDaySlotsView(v *queries.DaySlotsView) *DaySlotsResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse(s)
	}
	return &DaySlotsResponse{Date: v.Date, Slots: slots}
}

type StartSessionResponse struct {
	SessionID string `json:"sessionId"`
}

type PaymentResponse struct {
	BookingID  string `json:"bookingId" example:"BK-123456"`
	Total      string `json:"total" example:"132.59"`
	TotalCents int64  `json:"totalCents" example:"13259"`
}

func FromPaymentResult(r *commands.PaymentResult) *PaymentResponse {
	return &PaymentResponse{
		BookingID:  r.BookingID,
		Total:      r.Total.String(),
		TotalCents: r.Total.Cents(),
	}
}
