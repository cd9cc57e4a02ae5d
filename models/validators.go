package models

import (
	"strings"

	"github.com/go-playground/validator"
)

const MOBILE_NUMBER_LENGTH = 9

var validate = NewValidator()

// NewValidator returns a validator with the contact book's custom rules registered.
func NewValidator() *validator.Validate {
	v := validator.New()

	err := RegisterValidators(v)
	if err != nil {
		panic(err)
	}

	return v
}

func RegisterValidators(validate *validator.Validate) error {
	// mobile: exactly 9 ASCII digits, not all zeros
	return validate.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		number := fl.Field().String()
		if len(number) != MOBILE_NUMBER_LENGTH {
			return false
		}

		err := validate.Var(number, "number")
		if err != nil {
			return false
		}

		return strings.Trim(number, "0") != ""
	})
}

func isValidMobile(number string) bool {
	return validate.Var(number, "mobile") == nil
}
