package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var dealerIDPattern = regexp.MustCompile(`^[A-Za-z]{2}[0-9]{3}$`)

func init() {
	validate = validator.New()
	// dealerid: two letters followed by three digits, e.g. AB123.
	_ = validate.RegisterValidation("dealerid", func(fl validator.FieldLevel) bool {
		return dealerIDPattern.MatchString(fl.Field().String())
	})
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}
