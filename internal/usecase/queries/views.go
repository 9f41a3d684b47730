package queries

import (
	"strings"

	"booking-flow/internal/domain/booking"
	"booking-flow/internal/domain/catalog"
	"booking-flow/internal/pkg/ptr"
)

func toServiceView(s *catalog.Service) *ServiceView {
	v := &ServiceView{
		ID:          s.ID(),
		Name:        s.Name(),
		Description: s.Description(),
		Image:       s.Image(),
		Price:       s.Price().String(),
		PriceCents:  s.Price().Cents(),
		Duration:    s.Duration(),
		Popular:     s.Popular(),
		Features:    s.Features(),
		Rating:      s.Rating(),
		Reviews:     s.Reviews(),
		Bookings:    s.Bookings(),
	}
	if op := s.OriginalPrice(); op != nil {
		v.OriginalPrice = ptr.Of(op.String())
		v.OriginalPriceCents = ptr.Of(op.Cents())
	}
	return v
}

func toProviderView(p *catalog.Provider) *ProviderView {
	v := &ProviderView{
		ID:            p.ID(),
		Name:          p.Name(),
		Title:         p.Title(),
		Image:         p.Image(),
		Rating:        p.Rating(),
		Reviews:       p.Reviews(),
		Experience:    p.Experience(),
		Location:      p.Location(),
		Specialties:   p.Specialties(),
		Available:     p.Available(),
		Featured:      p.Featured(),
		NextAvailable: p.NextAvailable(),
		VenueImages:   p.VenueImages(),
	}
	if base, ok := p.BasePrice(); ok {
		v.BasePrice = ptr.Of(base.String())
		v.BasePriceCents = ptr.Of(base.Cents())
	}
	return v
}

func toSummaryView(b booking.Breakdown) SummaryView {
	return SummaryView{
		Subtotal:    b.Subtotal.String(),
		Tax:         b.Tax.String(),
		PlatformFee: b.PlatformFee.String(),
		Total:       b.Total.String(),
		TotalCents:  b.Total.Cents(),
	}
}

func toStepViews(steps []booking.StepView) []StepView {
	out := make([]StepView, 0, len(steps))
	for _, s := range steps {
		out = append(out, StepView{
			Step:      int(s.Step),
			Label:     s.Label,
			Status:    string(s.Status),
			Clickable: s.Clickable,
		})
	}
	return out
}

func toDetailsView(d booking.CustomerDetails) DetailsView {
	return DetailsView{
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Email:           d.Email,
		Phone:           d.Phone,
		SpecialRequests: d.SpecialRequests,
		MarketingEmails: d.MarketingEmails,
		TermsAccepted:   d.TermsAccepted,
	}
}

func toPaymentDraftView(p booking.PaymentDetails) PaymentDraftView {
	return PaymentDraftView{
		Method:            string(p.Method),
		CardNumber:        maskCardNumber(p.Card.CardNumber),
		ExpiryDate:        p.Card.ExpiryDate,
		CVVProvided:       p.Card.CVV != "",
		CardholderName:    p.Card.CardholderName,
		Street:            p.Billing.Street,
		City:              p.Billing.City,
		State:             p.Billing.State,
		ZipCode:           p.Billing.ZipCode,
		Country:           p.Billing.Country,
		SavePaymentMethod: p.SavePaymentMethod,
	}
}

// maskCardNumber keeps the last four digits of a formatted card number.
func maskCardNumber(formatted string) string {
	digits := strings.ReplaceAll(formatted, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	masked := strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
	return booking.FormatCardNumber(masked)
}
