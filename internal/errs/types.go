// Package errs defines the error shapes returned to API clients.
//
// Every failed request is answered with an HTTPError serialized as JSON, so
// clients always see the same structure:
//
//	{ "code": "...", "message": "...", "status": 422, "override": false, "errors": [], "action": null }
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "text", "error": "is required" }
type FieldError struct {
	// Field is the request field the error relates to (e.g. "text").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRedirect tells the client it should redirect somewhere.
	// Usually "Value" holds the URL or route.
	ActionTypeRedirect ActionType = "redirect"
)

// Action describes an optional "what the client should do next" instruction.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "UNPROCESSABLE_ENTITY").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: whether the client may show Message as-is.
//   - Errors: list of per-field errors (validation).
//   - Action: client instruction (optional).
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors"`

	// Action is an optional client instruction (redirect, etc.).
	Action *Action `json:"action"`

	// cause is the underlying error. It is logged, never serialized.
	cause error
}

// Error makes *HTTPError satisfy the built-in error interface.
// It returns Message, so logging the error shows the client-facing text.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// Only the type is compared, not Code or Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
		cause:    e.cause,
	}
}

// WithCause returns a copy of this HTTPError that wraps err.
//
//	return errs.NewInternalServerError().WithMessage("Failed to load games.").WithCause(err)
func (e *HTTPError) WithCause(err error) *HTTPError {
	clone := e.WithMessage(e.Message)
	clone.cause = err
	return clone
}

// Unwrap returns the underlying error, if any.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
// Example:
//
//	"Unprocessable Entity" -> "UNPROCESSABLE_ENTITY"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
