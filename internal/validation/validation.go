package validation

import (
	"fmt"
	"reflect"
	"strings"

	"contact_system/internal/apperr" // Error taxonomy

	"github.com/go-playground/validator/v10" // Struct validation
)

// Shared validator instance for reuse, reporting fields by their json names
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates v against its `validate` tags and converts violations
// into a single Validation error with one message per field.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(violations))
	for _, fe := range violations {
		messages = append(messages, message(fe))
	}
	return apperr.Validation(messages...)
}

// message renders a single field violation as "<field> <constraint>"
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "email":
		return fe.Field() + " must be a valid email address"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
