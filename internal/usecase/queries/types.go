package queries

import "time"

// ServiceView represents read-optimized catalog service data
type ServiceView struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Image              string   `json:"image"`
	Price              string   `json:"price"`
	PriceCents         int64    `json:"priceCents"`
	OriginalPrice      *string  `json:"originalPrice,omitempty"`
	OriginalPriceCents *int64   `json:"originalPriceCents,omitempty"`
	Duration           string   `json:"duration"`
	Popular            bool     `json:"popular"`
	Features           []string `json:"features"`
	Rating             float64  `json:"rating"`
	Reviews            int      `json:"reviews"`
	Bookings           int      `json:"bookings"`
}

// ProviderView represents read-optimized catalog provider data
type ProviderView struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Title          string   `json:"title"`
	Image          string   `json:"image"`
	Rating         float64  `json:"rating"`
	Reviews        int      `json:"reviews"`
	Experience     int      `json:"experience"`
	Location       string   `json:"location"`
	Specialties    []string `json:"specialties"`
	Available      bool     `json:"available"`
	Featured       bool     `json:"featured"`
	NextAvailable  string   `json:"nextAvailable"`
	BasePrice      *string  `json:"basePrice,omitempty"`
	BasePriceCents *int64   `json:"basePriceCents,omitempty"`
	VenueImages    []string `json:"venueImages"`
}

type SummaryView struct {
	Subtotal    string `json:"subtotal"`
	Tax         string `json:"tax"`
	PlatformFee string `json:"platformFee"`
	Total       string `json:"total"`
	TotalCents  int64  `json:"totalCents"`
}

type StepView struct {
	Step      int    `json:"step"`
	Label     string `json:"label"`
	Status    string `json:"status"`
	Clickable bool   `json:"clickable"`
}

type SlotView struct {
	Time       string `json:"time"`
	Price      string `json:"price"`
	PriceCents int64  `json:"priceCents"`
	Status     string `json:"status"`
	Selected   bool   `json:"selected"`
}

type DetailsView struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests"`
	MarketingEmails bool   `json:"marketingEmails"`
	TermsAccepted   bool   `json:"termsAccepted"`
}

// PaymentDraftView never exposes the full card number or the CVV.
type PaymentDraftView struct {
	Method            string `json:"method"`
	CardNumber        string `json:"cardNumber"`
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

type SessionView struct {
	ID               string            `json:"id"`
	CurrentStep      int               `json:"currentStep"`
	CurrentLabel     string            `json:"currentLabel"`
	HighestCompleted int               `json:"highestCompletedStep"`
	Steps            []StepView        `json:"steps"`
	Service          *ServiceView      `json:"service,omitempty"`
	Provider         *ProviderView     `json:"provider,omitempty"`
	Date             string            `json:"date,omitempty"`
	TimeSlot         *SlotView         `json:"timeSlot,omitempty"`
	Details          DetailsView       `json:"details"`
	DetailsErrors    map[string]string `json:"detailsErrors"`
	DetailsAccepted  bool              `json:"detailsAccepted"`
	Payment          PaymentDraftView  `json:"payment"`
	PaymentErrors    map[string]string `json:"paymentErrors"`
	PaymentFailure   string            `json:"paymentFailure,omitempty"`
	Processing       bool              `json:"processing"`
	Summary          *SummaryView      `json:"summary,omitempty"`
	CanProceed       bool              `json:"canProceed"`
	BookingID        string            `json:"bookingId,omitempty"`
}

// DayCell is one day of the month grid. Leading cells before the first
// weekday of the month are nil.
type DayCell struct {
	Date      string `json:"date"`
	Day       int    `json:"day"`
	Available bool   `json:"available"`
	SlotCount int    `json:"slotCount"`
	Today     bool   `json:"today"`
	Past      bool   `json:"past"`
	Selected  bool   `json:"selected"`
}

type CalendarMonthView struct {
	Month     string     `json:"month"`
	Label     string     `json:"label"`
	PrevMonth string     `json:"prevMonth"`
	NextMonth string     `json:"nextMonth"`
	Weekdays  []string   `json:"weekdays"`
	Cells     []*DayCell `json:"cells"`
}

type DaySlotsView struct {
	Date  string     `json:"date"`
	Slots []SlotView `json:"slots"`
}

type BookingView struct {
	ID                string      `json:"id"`
	Status            string      `json:"status"`
	Confirmation      string      `json:"confirmation"`
	ServiceID         int         `json:"serviceId"`
	ServiceName       string      `json:"serviceName"`
	ProviderID        int         `json:"providerId"`
	ProviderName      string      `json:"providerName"`
	ProviderLocation  string      `json:"providerLocation"`
	Date              string      `json:"date"`
	Time              string      `json:"time"`
	FirstName         string      `json:"firstName"`
	LastName          string      `json:"lastName"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone"`
	SpecialRequests   string      `json:"specialRequests,omitempty"`
	PaymentMethod     string      `json:"paymentMethod"`
	CardLast4         string      `json:"cardLast4,omitempty"`
	SavePaymentMethod bool        `json:"savePaymentMethod"`
	Pricing           SummaryView `json:"pricing"`
	Total             string      `json:"total"`
	CalendarLink      string      `json:"calendarLink"`
	ShareText         string      `json:"shareText"`
	CreatedAt         time.Time   `json:"createdAt"`
}
