// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for query parameters or HTTPError for API responses)
// to ensure the client receives meaningful, actionable, and consistent
// error messages.
//
// - Return consistent error shapes to API clients (JSON).
// - Support field-level validation errors for request parameters.
// - Provide errors that play nicely with Go's standard errors package.
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "attributes", "error": "unknown attribute: Nmae" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "id").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and is designed to be
// serialized directly to JSON.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	// Errors holds field-level validation errors, typically for bad
	// query/path parameters.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError: any *HTTPError
// matches any other *HTTPError regardless of code/status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
// Useful when a base error template needs a customized message without
// mutating the original.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an
// UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
