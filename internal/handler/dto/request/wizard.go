package request

import (
	"booking-flow/internal/domain/booking"
	"booking-flow/internal/pkg/patch"
)

type SelectServiceRequest struct {
	ServiceID int `json:"serviceId" binding:"required,min=1"`
}

type SelectProviderRequest struct {
	ProviderID int `json:"providerId" binding:"required,min=1"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required" example:"2025-03-10"`
}

type SelectTimeSlotRequest struct {
	Time string `json:"time" binding:"required" example:"10:00"`
}

type CalendarQuery struct {
	Month *string `form:"month" example:"2025-03"`
}

func (q CalendarQuery) MonthOrCurrent() string {
	return patch.Coalesce(q.Month, "")
}

// UpdateDetailsRequest is a partial update: omitted fields keep their value.
type UpdateDetailsRequest struct {
	FirstName       *string `json:"firstName" binding:"omitempty,max=100"`
	LastName        *string `json:"lastName" binding:"omitempty,max=100"`
	Email           *string `json:"email" binding:"omitempty,max=254"`
	Phone           *string `json:"phone" binding:"omitempty,max=32"`
	SpecialRequests *string `json:"specialRequests" binding:"omitempty,max=1000"`
	MarketingEmails *bool   `json:"marketingEmails"`
	TermsAccepted   *bool   `json:"termsAccepted"`
}

func (r *UpdateDetailsRequest) ToDomain() booking.DetailsPatch {
	return booking.DetailsPatch{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		SpecialRequests: r.SpecialRequests,
		MarketingEmails: r.MarketingEmails,
		TermsAccepted:   r.TermsAccepted,
	}
}

// UpdatePaymentRequest is a partial update: omitted fields keep their value.
type UpdatePaymentRequest struct {
	Method            *string `json:"method" binding:"omitempty,oneof=card paypal apple_pay"`
	CardNumber        *string `json:"cardNumber" binding:"omitempty,max=32"`
	ExpiryDate        *string `json:"expiryDate" binding:"omitempty,max=8"`
	CVV               *string `json:"cvv" binding:"omitempty,max=8"`
	CardholderName    *string `json:"cardholderName" binding:"omitempty,max=100"`
	Street            *string `json:"street" binding:"omitempty,max=200"`
	City              *string `json:"city" binding:"omitempty,max=100"`
	State             *string `json:"state" binding:"omitempty,max=100"`
	ZipCode           *string `json:"zipCode" binding:"omitempty,max=16"`
	Country           *string `json:"country" binding:"omitempty,max=64"`
	SavePaymentMethod *bool   `json:"savePaymentMethod"`
}

func (r *UpdatePaymentRequest) ToDomain() booking.PaymentPatch {
	return booking.PaymentPatch{
		Method:            patch.Map(r.Method, func(m string) booking.PaymentMethod { return booking.PaymentMethod(m) }),
		CardNumber:        r.CardNumber,
		ExpiryDate:        r.ExpiryDate,
		CVV:               r.CVV,
		CardholderName:    r.CardholderName,
		Street:            r.Street,
		City:              r.City,
		State:             r.State,
		ZipCode:           r.ZipCode,
		Country:           r.Country,
		SavePaymentMethod: r.SavePaymentMethod,
	}
}
