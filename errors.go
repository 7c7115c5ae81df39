package parley

import (
	"errors"
	"fmt"
)

// ErrUnknownProvider is returned when a provider name is not in the
// supported set.
var ErrUnknownProvider = errors.New("unknown provider")

// ProviderError reports a failed provider call: either a non-2xx API
// response or a transport-level failure with no response at all.
type ProviderError struct {
	// StatusCode is the HTTP status of the response, 0 for transport
	// failures.
	StatusCode int
	// Message is the human-readable failure description, taken from the
	// response body's nested error message when present.
	Message string
	// Cause is the underlying SDK or transport error, if any.
	Cause error
}

// Error returns the failure description.
func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "provider request failed"
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a ProviderError for a non-2xx API response.
func NewProviderError(statusCode int, message string, cause error) *ProviderError {
	return &ProviderError{
		StatusCode: statusCode,
		Message:    message,
		Cause:      cause,
	}
}

// NewTransportError creates a ProviderError for a network-level failure
// where no response was received.
func NewTransportError(cause error) *ProviderError {
	return &ProviderError{Cause: cause}
}

// AsProviderError extracts a *ProviderError from err's chain, or wraps err
// in one so callers always have a uniform failure to surface.
func AsProviderError(err error) *ProviderError {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe
	}
	return &ProviderError{Message: fmt.Sprintf("%v", err), Cause: err}
}
