package response

import (
	"time"

	"booking-flow/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                string          `json:"id" example:"BK-123456"`
	Status            string          `json:"status" example:"confirmed"`
	Confirmation      string          `json:"confirmation" enums:"pending,sending,sent,failed"`
	ServiceID         int             `json:"serviceId"`
	ServiceName       string          `json:"serviceName"`
	ProviderID        int             `json:"providerId"`
	ProviderName      string          `json:"providerName"`
	ProviderLocation  string          `json:"providerLocation"`
	Date              string          `json:"date" example:"2025-03-10"`
	Time              string          `json:"time" example:"10:00"`
	FirstName         string          `json:"firstName"`
	LastName          string          `json:"lastName"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	SpecialRequests   string          `json:"specialRequests,omitempty"`
	PaymentMethod     string          `json:"paymentMethod"`
	CardLast4         string          `json:"cardLast4,omitempty"`
	SavePaymentMethod bool            `json:"savePaymentMethod"`
	Pricing           SummaryResponse `json:"pricing"`
	Total             string          `json:"total" example:"132.59"`
	CalendarLink      string          `json:"calendarLink"`
	ShareText         string          `json:"shareText"`
	CreatedAt         time.Time       `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
