// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules (like numeric ranges)
// defined in struct tags and extracts validation errors into a format
// the client can understand.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/titanic-api/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with `param:"..."`/`query:"..."` tags.
//   - Implement Validate() error that runs validator.Struct(req) and/or
//     custom checks.
//   - Return validator.ValidationErrors or CustomValidationErrors.
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a
// specific field, used for rules that cannot be expressed via validator
// tags (e.g. "id must parse as a positive integer").
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the request struct from path and query
//     parameters (payload must be a pointer).
//  2. payload.Validate() applies validation rules.
//  3. Returns *errs.HTTPError (400) with field-level errors on failure.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("Invalid request parameters", nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, nil, fieldErrors)
	}

	return nil
}

// validateStruct calls v.Validate() and extracts field errors if
// validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	// validator.ValidationErrors is returned when struct tag validation
	// fails; otherwise the error carries custom validations.
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		customValidationErrors := err.(CustomValidationErrors)
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
	}

	// Convert validator.ValidationErrors into user-friendly messages.
	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min means minimum length for strings, minimum value for
			// numbers.
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
