package errs

import "strings"

// FieldError describes a validation failure for a single parameter or
// body field.
//
// Example:
//
//	{ "field": "description", "error": "must be at least 5 characters" }
type FieldError struct {
	// Field is the parameter or body field the error relates to.
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the canonical error payload for API responses.
//
// It implements the error interface and is serialized directly to
// JSON by the global error handler.
//
// Fields:
//   - Code: machine-friendly code derived from the status text
//     (e.g. "UNPROCESSABLE_ENTITY").
//   - Message: human-friendly detail string.
//   - Status: HTTP status code to respond with.
//   - Errors: per-field validation errors, when applicable.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	// Errors holds field-level validation errors. Omitted from the
	// payload when there are none.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError, so that
// errors.Is(err, &errs.HTTPError{}) matches any API error regardless
// of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
// The receiver is not mutated, so shared error templates stay safe.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts an HTTP status text into an
// UPPER_CASE_WITH_UNDERSCORES error code.
//
// Example:
//
//	"Unprocessable Entity" -> "UNPROCESSABLE_ENTITY"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
