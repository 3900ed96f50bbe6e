package checkout

import (
	"reflect"
	"strings"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a json field name to a human readable problem with it
type FieldErrors map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report errors under the json name, that is what clients render
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

func validateDetails(d domain.CustomerDetails) FieldErrors {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	fe := FieldErrors{}
	for _, ve := range err.(validator.ValidationErrors) {
		fe[ve.Field()] = "This field is required"
	}
	return fe
}

// trimDetails strips surrounding whitespace so "   " does not count as filled
func trimDetails(d domain.CustomerDetails) domain.CustomerDetails {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Address = strings.TrimSpace(d.Address)
	d.City = strings.TrimSpace(d.City)
	d.ZipCode = strings.TrimSpace(d.ZipCode)
	return d
}

// validatePaymentForm checks only the fields belonging to the selected
// method. Checks are intentionally shallow, this is a demo gateway.
func validatePaymentForm(form domain.PaymentForm) FieldErrors {
	fe := FieldErrors{}

	switch form.Method {
	case domain.MethodUPI:
		if !strings.Contains(form.UPIID, "@") {
			fe["upiId"] = "Enter a valid UPI ID"
		}
	case domain.MethodDebit, domain.MethodCredit:
		if len(form.CardNumber) < 16 {
			fe["cardNumber"] = "Enter a valid card number"
		}
		if len(form.ExpiryDate) < 5 {
			fe["expiryDate"] = "Enter a valid expiry date"
		}
		if len(form.CVV) < 3 {
			fe["cvv"] = "Enter a valid CVV"
		}
		if strings.TrimSpace(form.CardholderName) == "" {
			fe["cardholderName"] = "This field is required"
		}
	case domain.MethodNetbanking:
		if strings.TrimSpace(form.BankName) == "" {
			fe["bankName"] = "Select your bank"
		}
	default:
		fe["method"] = "Select a payment method"
	}

	if len(fe) == 0 {
		return nil
	}
	return fe
}
