package booking

import (
	"fmt"
	"strings"
	"time"

	"booking-flow/internal/domain/slot"
	"booking-flow/internal/pkg/money"
)

const StatusConfirmed = "confirmed"

type ConfirmationStatus string

const (
	ConfirmationPending ConfirmationStatus = "pending"
	ConfirmationSending ConfirmationStatus = "sending"
	ConfirmationSent    ConfirmationStatus = "sent"
	ConfirmationFailed  ConfirmationStatus = "failed"
)

func ParseConfirmationStatus(s string) (ConfirmationStatus, error) {
	switch c := ConfirmationStatus(s); c {
	case ConfirmationPending, ConfirmationSending, ConfirmationSent, ConfirmationFailed:
		return c, nil
	default:
		return "", ErrUnknownConfirmation
	}
}

func (c ConfirmationStatus) rank() int {
	switch c {
	case ConfirmationPending:
		return 0
	case ConfirmationSending:
		return 1
	case ConfirmationSent, ConfirmationFailed:
		return 2
	default:
		return -1
	}
}

// CanMoveTo reports whether next is a later stage: pending, sending, then
// sent or failed. Final states never change.
func (c ConfirmationStatus) CanMoveTo(next ConfirmationStatus) bool {
	return next.rank() > c.rank() && c.rank() >= 0
}

// NewRecordID derives "BK-" plus the last six digits of the epoch millis.
func NewRecordID(now time.Time) string {
	return fmt.Sprintf("BK-%06d", now.UnixMilli()%1_000_000)
}

type CustomerSnapshot struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	MarketingEmails bool
}

// PaymentSummary never holds the full card number or CVV.
type PaymentSummary struct {
	Method            PaymentMethod
	CardLast4         string
	SavePaymentMethod bool
}

type RecordAttrs struct {
	ID               string
	ServiceID        int
	ServiceName      string
	ProviderID       int
	ProviderName     string
	ProviderLocation string
	Date             slot.DateKey
	Time             string
	Customer         CustomerSnapshot
	SpecialRequests  string
	Payment          PaymentSummary
	Pricing          Breakdown
	CreatedAt        time.Time
}

type Record struct {
	id               string
	serviceID        int
	serviceName      string
	providerID       int
	providerName     string
	providerLocation string
	date             slot.DateKey
	time             string
	customer         CustomerSnapshot
	specialRequests  string
	payment          PaymentSummary
	pricing          Breakdown
	status           string
	confirmation     ConfirmationStatus
	createdAt        time.Time
}

func NewRecord(a RecordAttrs) (*Record, error) {
	if strings.TrimSpace(a.ID) == "" {
		return nil, ErrEmptyRecordID
	}
	switch a.Payment.Method {
	case PaymentMethodCard, PaymentMethodPayPal, PaymentMethodApplePay:
	default:
		return nil, ErrInvalidPayment
	}
	return &Record{
		id:               a.ID,
		serviceID:        a.ServiceID,
		serviceName:      a.ServiceName,
		providerID:       a.ProviderID,
		providerName:     a.ProviderName,
		providerLocation: a.ProviderLocation,
		date:             a.Date,
		time:             a.Time,
		customer:         a.Customer,
		specialRequests:  a.SpecialRequests,
		payment:          a.Payment,
		pricing:          a.Pricing,
		status:           StatusConfirmed,
		confirmation:     ConfirmationPending,
		createdAt:        a.CreatedAt,
	}, nil
}

// ReconstructRecord rebuilds a persisted record without re-running creation rules.
func ReconstructRecord(a RecordAttrs, status string, confirmation ConfirmationStatus) *Record {
	return &Record{
		id:               a.ID,
		serviceID:        a.ServiceID,
		serviceName:      a.ServiceName,
		providerID:       a.ProviderID,
		providerName:     a.ProviderName,
		providerLocation: a.ProviderLocation,
		date:             a.Date,
		time:             a.Time,
		customer:         a.Customer,
		specialRequests:  a.SpecialRequests,
		payment:          a.Payment,
		pricing:          a.Pricing,
		status:           status,
		confirmation:     confirmation,
		createdAt:        a.CreatedAt,
	}
}

// MarkConfirmation moves the delivery status forward and reports whether it changed.
func (r *Record) MarkConfirmation(s ConfirmationStatus) bool {
	if !r.confirmation.CanMoveTo(s) {
		return false
	}
	r.confirmation = s
	return true
}

func (r *Record) ID() string                       { return r.id }
func (r *Record) ServiceID() int                   { return r.serviceID }
func (r *Record) ServiceName() string              { return r.serviceName }
func (r *Record) ProviderID() int                  { return r.providerID }
func (r *Record) ProviderName() string             { return r.providerName }
func (r *Record) ProviderLocation() string         { return r.providerLocation }
func (r *Record) Date() slot.DateKey               { return r.date }
func (r *Record) Time() string                     { return r.time }
func (r *Record) Customer() CustomerSnapshot       { return r.customer }
func (r *Record) SpecialRequests() string          { return r.specialRequests }
func (r *Record) Payment() PaymentSummary          { return r.payment }
func (r *Record) Pricing() Breakdown               { return r.pricing }
func (r *Record) Total() money.Money               { return r.pricing.Total }
func (r *Record) Status() string                   { return r.status }
func (r *Record) Confirmation() ConfirmationStatus { return r.confirmation }
func (r *Record) CreatedAt() time.Time             { return r.createdAt }
