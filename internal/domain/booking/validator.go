package booking

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type Validator interface {
	ValidateDetails(d CustomerDetails) FieldErrors
	ValidatePayment(p PaymentDetails) FieldErrors
}

var (
	emailPattern  = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern  = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
)

const minCardDigits = 13

// messages is keyed by field, then by the failing validation tag.
var messages = map[string]map[string]string{
	"firstName":      {"notblank": "First name is required"},
	"lastName":       {"notblank": "Last name is required"},
	"email":          {"required": "Email is required", "loose_email": "Please enter a valid email address"},
	"phone":          {"required": "Phone number is required", "loose_phone": "Please enter a valid phone number"},
	"termsAccepted":  {"required": "Please accept the terms and conditions"},
	"method":         {"oneof": "Please choose a payment method"},
	"cardNumber":     {"notblank": "Card number is required", "card_number": "Please enter a valid card number"},
	"expiryDate":     {"required": "Expiry date is required", "expiry": "Please enter a valid expiry date (MM/YY)"},
	"cvv":            {"required": "CVV is required", "min": "Please enter a valid CVV"},
	"cardholderName": {"notblank": "Cardholder name is required"},
	"street":         {"notblank": "Street address is required"},
	"city":           {"notblank": "City is required"},
	"zipCode":        {"notblank": "ZIP code is required"},
}

// FormValidator applies the step form rules with go-playground/validator.
type FormValidator struct {
	v *validator.Validate
}

func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "loose_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "loose_phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "card_number", func(fl validator.FieldLevel) bool {
		return len(stripSpaces(fl.Field().String())) >= minCardDigits
	})
	mustRegister(v, "expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})
	return &FormValidator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func (f *FormValidator) ValidateDetails(d CustomerDetails) FieldErrors {
	out := FieldErrors{}
	f.collect(out, f.v.Struct(d))
	return out
}

// ValidatePayment checks card and billing data only for the card method.
func (f *FormValidator) ValidatePayment(p PaymentDetails) FieldErrors {
	out := FieldErrors{}
	if err := f.v.Var(string(p.Method), "oneof=card paypal apple_pay"); err != nil {
		out["method"] = messageFor("method", "oneof")
		return out
	}
	if p.Method != PaymentMethodCard {
		return out
	}
	f.collect(out, f.v.Struct(p.Card))
	f.collect(out, f.v.Struct(p.Billing))
	return out
}

func (f *FormValidator) collect(out FieldErrors, err error) {
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = err.Error()
		return
	}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = messageFor(fe.Field(), fe.Tag())
	}
}

func messageFor(field, tag string) string {
	if m, ok := messages[field][tag]; ok {
		return m
	}
	return field + " is invalid"
}
