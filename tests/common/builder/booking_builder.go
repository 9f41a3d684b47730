//go:build unit || e2e

package builder

import (
	"time"

	"booking-flow/internal/domain/booking"
	reqdto "booking-flow/internal/handler/dto/request"
	"booking-flow/internal/domain/slot"
	"booking-flow/internal/pkg/money"
)

type CustomerBuilder struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	SpecialRequests string
	MarketingEmails bool
	TermsAccepted   bool
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane.doe@example.com",
		Phone:         "+1 (555) 123-4567",
		TermsAccepted: true,
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) BuildDomain() booking.CustomerDetails {
	return booking.CustomerDetails{
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		Phone:           b.Phone,
		SpecialRequests: b.SpecialRequests,
		MarketingEmails: b.MarketingEmails,
		TermsAccepted:   b.TermsAccepted,
	}
}

func (b *CustomerBuilder) BuildPatch() booking.DetailsPatch {
	return booking.DetailsPatch{
		FirstName:       &b.FirstName,
		LastName:        &b.LastName,
		Email:           &b.Email,
		Phone:           &b.Phone,
		SpecialRequests: &b.SpecialRequests,
		MarketingEmails: &b.MarketingEmails,
		TermsAccepted:   &b.TermsAccepted,
	}
}

func (b *CustomerBuilder) BuildRequestDTO() reqdto.UpdateDetailsRequest {
	return reqdto.UpdateDetailsRequest{
		FirstName:       &b.FirstName,
		LastName:        &b.LastName,
		Email:           &b.Email,
		Phone:           &b.Phone,
		SpecialRequests: &b.SpecialRequests,
		MarketingEmails: &b.MarketingEmails,
		TermsAccepted:   &b.TermsAccepted,
	}
}

type PaymentBuilder struct {
	Method         booking.PaymentMethod
	CardNumber     string
	ExpiryDate     string
	CVV            string
	CardholderName string
	Street         string
	City           string
	ZipCode        string
	Save           bool
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		Method:         booking.PaymentMethodCard,
		CardNumber:     "4242 4242 4242 4242",
		ExpiryDate:     "12/28",
		CVV:            "123",
		CardholderName: "Jane Doe",
		Street:         "1 Main St",
		City:           "Springfield",
		ZipCode:        "12345",
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

func (b *PaymentBuilder) BuildDomain() booking.PaymentDetails {
	p := booking.NewPaymentDetails()
	p.Method = b.Method
	p.Card = booking.CardData{
		CardNumber:     b.CardNumber,
		ExpiryDate:     b.ExpiryDate,
		CVV:            b.CVV,
		CardholderName: b.CardholderName,
	}
	p.Billing.Street = b.Street
	p.Billing.City = b.City
	p.Billing.ZipCode = b.ZipCode
	p.SavePaymentMethod = b.Save
	return p
}

func (b *PaymentBuilder) BuildPatch() booking.PaymentPatch {
	return booking.PaymentPatch{
		Method:            &b.Method,
		CardNumber:        &b.CardNumber,
		ExpiryDate:        &b.ExpiryDate,
		CVV:               &b.CVV,
		CardholderName:    &b.CardholderName,
		Street:            &b.Street,
		City:              &b.City,
		ZipCode:           &b.ZipCode,
		SavePaymentMethod: &b.Save,
	}
}

func (b *PaymentBuilder) BuildRequestDTO() reqdto.UpdatePaymentRequest {
	method := string(b.Method)
	return reqdto.UpdatePaymentRequest{
		Method:            &method,
		CardNumber:        &b.CardNumber,
		ExpiryDate:        &b.ExpiryDate,
		CVV:               &b.CVV,
		CardholderName:    &b.CardholderName,
		Street:            &b.Street,
		City:              &b.City,
		ZipCode:           &b.ZipCode,
		SavePaymentMethod: &b.Save,
	}
}

type RecordBuilder struct {
	booking.RecordAttrs
}

func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{RecordAttrs: booking.RecordAttrs{
		ID:               "BK-123456",
		ServiceID:        1,
		ServiceName:      "Deep Tissue Massage",
		ProviderID:       1,
		ProviderName:     "Sarah Johnson",
		ProviderLocation: "Downtown Spa Center",
		Date:             slot.DateKey("2025-03-10"),
		Time:             "10:00",
		Customer: booking.CustomerSnapshot{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane.doe@example.com",
			Phone:     "+1 (555) 123-4567",
		},
		Payment: booking.PaymentSummary{Method: booking.PaymentMethodCard, CardLast4: "4242"},
		Pricing: booking.Breakdown{
			Subtotal:    money.New(12000),
			Tax:         money.New(960),
			PlatformFee: money.New(299),
			Total:       money.New(13259),
		},
		CreatedAt: time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC),
	}}
}

func (b *RecordBuilder) With(mutate func(*RecordBuilder)) *RecordBuilder {
	mutate(b)
	return b
}

func (b *RecordBuilder) BuildDomain() (*booking.Record, error) {
	return booking.NewRecord(b.RecordAttrs)
}

func (b *RecordBuilder) MustBuild() *booking.Record {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}
