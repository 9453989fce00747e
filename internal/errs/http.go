package errs

import (
	"net/http"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation errors)
//
// This is designed for parameter validation and "you sent garbage" cases.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	// Default code comes from HTTP status text:
	// http.StatusText(400) => "Bad Request" => "BAD_REQUEST"
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports optional custom code override similar to NewBadRequestError.
func NewNotFoundError(message string, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewSourceUnavailableError creates a 503 Service Unavailable HTTPError.
//
// Used when the configured data backend cannot be opened or read. The
// message stays generic so backend paths/DSNs never leak to clients; the
// real error is logged by the global error handler.
func NewSourceUnavailableError() *HTTPError {
	return &HTTPError{
		Code:    "SOURCE_UNAVAILABLE",
		Message: "Data source unavailable",
		Status:  http.StatusServiceUnavailable,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// Note:
//   - message is the generic status text, not the real internal error message.
//   - this is a security-friendly default: clients don't need stack traces.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// ValidationError converts a generic validation error into a 400 Bad
// Request HTTPError so handlers can do `return errs.ValidationError(err)`
// and clients get a consistent error structure.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), nil, nil)
}
