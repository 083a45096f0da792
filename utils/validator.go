package utils

import (
	"strings"

	"github.com/badoux/checkmail"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is a single field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStruct runs the `validate` tags on s and returns one entry
// per violating field, nil when the value is valid.
func ValidateStruct(s interface{}) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	// Format validation errors
	var errors []FieldError
	for _, err := range err.(validator.ValidationErrors) {
		field := strings.ToLower(err.Field()[:1]) + err.Field()[1:]
		tag := err.Tag()
		param := err.Param()

		switch tag {
		case "required":
			errors = append(errors, FieldError{field, field + " is required"})
		case "min":
			errors = append(errors, FieldError{field, field + " must be at least " + param + " characters"})
		case "max":
			errors = append(errors, FieldError{field, field + " must be at most " + param + " characters"})
		case "email":
			errors = append(errors, FieldError{field, field + " must be a valid email"})
		case "oneof":
			errors = append(errors, FieldError{field, field + " must be one of: " + param})
		case "len":
			errors = append(errors, FieldError{field, field + " must be exactly " + param + " characters"})
		default:
			errors = append(errors, FieldError{field, field + " is invalid"})
		}
	}

	return errors
}

// ValidateEmailFormat runs the stricter checkmail syntax check used on
// registration, on top of the validator tag.
func ValidateEmailFormat(email string) error {
	return checkmail.ValidateFormat(email)
}
