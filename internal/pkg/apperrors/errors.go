package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// Transport errors
	ErrUnreachable = errors.New("service unreachable")
	ErrTimeout     = errors.New("request timed out")

	// Client-side errors (4xx)
	ErrBadRequest       = errors.New("invalid data")
	ErrUnauthorized     = errors.New("unauthorized, please re-authenticate")
	ErrForbidden        = errors.New("forbidden")
	ErrResourceNotFound = errors.New("not found")
	ErrConflict         = errors.New("conflict")

	// Server-side errors (5xx)
	ErrServerError = errors.New("server error, try again later")

	// Session errors
	ErrNoSession    = errors.New("no active session")
	ErrTokenInvalid = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// APIError carries the outcome of a failed remote call: the sentinel it maps
// to, the HTTP status when one was received, and the human-readable message
// to surface (server-supplied when available, generic fallback otherwise).
type APIError struct {
	Err        error
	StatusCode int
	Message    string
	Details    map[string]interface{}
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// FromStatus maps an HTTP status code to an APIError. serverMessage is the
// message extracted from the response body; when empty the sentinel's generic
// text is used, so callers can always show APIError.Error() to the user.
func FromStatus(status int, serverMessage string) *APIError {
	var sentinel error
	switch {
	case status == http.StatusBadRequest:
		sentinel = ErrBadRequest
	case status == http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case status == http.StatusForbidden:
		sentinel = ErrForbidden
	case status == http.StatusNotFound:
		sentinel = ErrResourceNotFound
	case status == http.StatusConflict:
		sentinel = ErrConflict
	case status >= 500:
		sentinel = ErrServerError
	default:
		sentinel = fmt.Errorf("unexpected status %d", status)
	}
	return &APIError{
		Err:        sentinel,
		StatusCode: status,
		Message:    serverMessage,
	}
}

// NewUnreachableError wraps a transport-level failure (no HTTP response).
func NewUnreachableError(cause error) *APIError {
	return &APIError{
		Err:     ErrUnreachable,
		Message: ErrUnreachable.Error(),
		Details: map[string]interface{}{"cause": cause.Error()},
	}
}

// NewValidationError creates a client-side validation failure that never
// reached the network.
func NewValidationError(message string) *APIError {
	return &APIError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// StatusOf returns the HTTP status attached to err, or 0 when err is not an
// APIError or no response was received.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// UserMessage returns the text a screen should show for err. Server-supplied
// messages pass through verbatim; anything else falls back to the error text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return err.Error()
}
