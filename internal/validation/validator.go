// Package validation enforces request-level input rules before any service
// logic runs.
package validation

import (
	"strings"

	domain "paygate/internal/errors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("topup_method", func(fl validator.FieldLevel) bool {
		return IsValidTopupMethod(fl.Field().String())
	})
	return v
}

// Struct validates tagged fields and returns a domain ValidationError for
// the first violation.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return domain.Validation(strings.ToLower(fe.Field()), "failed on rule "+fe.Tag())
	}
	return domain.Validation("request", err.Error())
}

// topupMethods are the supported payment channels for topups.
var topupMethods = map[string]struct{}{
	"alfamart":  {},
	"indomart":  {},
	"bca":       {},
	"bni":       {},
	"bri":       {},
	"mandiri":   {},
	"gopay":     {},
	"ovo":       {},
	"dana":      {},
	"shopeepay": {},
}

func IsValidTopupMethod(method string) bool {
	_, ok := topupMethods[strings.ToLower(method)]
	return ok
}
