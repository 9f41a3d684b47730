package booking

import (
	"regexp"
	"strings"
)

type CustomerDetails struct {
	FirstName       string `json:"firstName" validate:"notblank"`
	LastName        string `json:"lastName" validate:"notblank"`
	Email           string `json:"email" validate:"required,loose_email"`
	Phone           string `json:"phone" validate:"required,loose_phone"`
	SpecialRequests string `json:"specialRequests"`
	MarketingEmails bool   `json:"marketingEmails"`
	TermsAccepted   bool   `json:"termsAccepted" validate:"required"`
}

// DetailsPatch carries the fields edited in one change; nil fields are untouched.
type DetailsPatch struct {
	FirstName       *string
	LastName        *string
	Email           *string
	Phone           *string
	SpecialRequests *string
	MarketingEmails *bool
	TermsAccepted   *bool
}

func (d CustomerDetails) apply(p DetailsPatch) (CustomerDetails, []string) {
	var edited []string
	set := func(dst *string, v *string, field string) {
		if v != nil {
			*dst = *v
			edited = append(edited, field)
		}
	}
	set(&d.FirstName, p.FirstName, "firstName")
	set(&d.LastName, p.LastName, "lastName")
	set(&d.Email, p.Email, "email")
	set(&d.Phone, p.Phone, "phone")
	set(&d.SpecialRequests, p.SpecialRequests, "specialRequests")
	if p.MarketingEmails != nil {
		d.MarketingEmails = *p.MarketingEmails
		edited = append(edited, "marketingEmails")
	}
	if p.TermsAccepted != nil {
		d.TermsAccepted = *p.TermsAccepted
		edited = append(edited, "termsAccepted")
	}
	return d, edited
}

type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodPayPal   PaymentMethod = "paypal"
	PaymentMethodApplePay PaymentMethod = "apple_pay"
)

type CardData struct {
	CardNumber     string `json:"cardNumber" validate:"notblank,card_number"`
	ExpiryDate     string `json:"expiryDate" validate:"required,expiry"`
	CVV            string `json:"cvv" validate:"required,min=3"`
	CardholderName string `json:"cardholderName" validate:"notblank"`
}

type BillingAddress struct {
	Street  string `json:"street" validate:"notblank"`
	City    string `json:"city" validate:"notblank"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode" validate:"notblank"`
	Country string `json:"country"`
}

type PaymentDetails struct {
	Method            PaymentMethod
	Card              CardData
	Billing           BillingAddress
	SavePaymentMethod bool
}

func NewPaymentDetails() PaymentDetails {
	return PaymentDetails{
		Method:  PaymentMethodCard,
		Billing: BillingAddress{Country: "US"},
	}
}

// CardLast4 returns the last four digits of the card number, or "" when the
// method is not card.
func (p PaymentDetails) CardLast4() string {
	if p.Method != PaymentMethodCard {
		return ""
	}
	digits := stripSpaces(p.Card.CardNumber)
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

type PaymentPatch struct {
	Method            *PaymentMethod
	CardNumber        *string
	ExpiryDate        *string
	CVV               *string
	CardholderName    *string
	Street            *string
	City              *string
	State             *string
	ZipCode           *string
	Country           *string
	SavePaymentMethod *bool
}

func (p PaymentDetails) apply(patch PaymentPatch) (PaymentDetails, []string) {
	var edited []string
	set := func(dst *string, v *string, field string, format func(string) string) {
		if v == nil {
			return
		}
		if format != nil {
			*dst = format(*v)
		} else {
			*dst = *v
		}
		edited = append(edited, field)
	}
	if patch.Method != nil {
		p.Method = *patch.Method
		edited = append(edited, "method")
	}
	set(&p.Card.CardNumber, patch.CardNumber, "cardNumber", FormatCardNumber)
	set(&p.Card.ExpiryDate, patch.ExpiryDate, "expiryDate", FormatExpiry)
	set(&p.Card.CVV, patch.CVV, "cvv", FormatCVV)
	set(&p.Card.CardholderName, patch.CardholderName, "cardholderName", nil)
	set(&p.Billing.Street, patch.Street, "street", nil)
	set(&p.Billing.City, patch.City, "city", nil)
	set(&p.Billing.State, patch.State, "state", nil)
	set(&p.Billing.ZipCode, patch.ZipCode, "zipCode", nil)
	set(&p.Billing.Country, patch.Country, "country", nil)
	if patch.SavePaymentMethod != nil {
		p.SavePaymentMethod = *patch.SavePaymentMethod
		edited = append(edited, "savePaymentMethod")
	}
	return p, edited
}

var (
	nonDigit  = regexp.MustCompile(`\D`)
	fourChunk = regexp.MustCompile(`(.{4})`)
	mmThenYY  = regexp.MustCompile(`^(\d{2})(\d)`)
)

// FormatCardNumber groups the number in blocks of four, capped at 19 characters.
func FormatCardNumber(v string) string {
	out := strings.TrimSpace(fourChunk.ReplaceAllString(stripSpaces(v), "$1 "))
	if len(out) > 19 {
		out = out[:19]
	}
	return out
}

// FormatExpiry keeps digits only and inserts the MM/YY separator.
func FormatExpiry(v string) string {
	out := mmThenYY.ReplaceAllString(nonDigit.ReplaceAllString(v, ""), "$1/$2")
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func FormatCVV(v string) string {
	out := nonDigit.ReplaceAllString(v, "")
	if len(out) > 4 {
		out = out[:4]
	}
	return out
}

func stripSpaces(v string) string {
	return strings.Join(strings.Fields(v), "")
}
