// Package forms validates user input declaratively before any network call
// is made. Rules live as validator tags on form structs; Validate returns
// field-keyed messages so a screen can render the first failing rule under
// the corresponding input.
package forms

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name so error keys match what the form
	// rendered.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Result is the outcome of validating one form. Errors maps field name to
// the message of the first failing rule for that field.
type Result struct {
	Valid  bool
	Errors map[string]string
}

// ErrorFor returns the message for a field, empty when the field is valid.
func (r Result) ErrorFor(field string) string {
	return r.Errors[field]
}

// Validate checks a form struct against its validator tags. Submission must
// be blocked while Valid is false.
func Validate(form interface{}) Result {
	err := validate.Struct(form)
	if err == nil {
		return Result{Valid: true, Errors: map[string]string{}}
	}

	result := Result{Errors: map[string]string{}}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		result.Errors[""] = err.Error()
		return result
	}

	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()
		if _, exists := result.Errors[field]; exists {
			continue // keep the first failing rule per field
		}
		result.Errors[field] = messageFor(fieldErr)
	}
	return result
}

// messageFor renders a human-readable message for one failed rule.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return "must be a valid email address"
	case "gtefield":
		return "must not be before " + fe.Param()
	case "ltefield":
		return "must not be after " + fe.Param()
	case "required_if":
		return "this field is required"
	default:
		return "is invalid"
	}
}
