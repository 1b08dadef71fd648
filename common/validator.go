package common

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks a payload against its struct validation tags and returns
// the validation errors, if any.
func Validate(payload interface{}) error {
	if err := validate.Struct(payload); err != nil {
		return err.(validator.ValidationErrors)
	}
	return nil
}
