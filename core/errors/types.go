// ABOUTME: Custom error types for the icon proxy core
// ABOUTME: Separates caller mistakes from upstream failures so the API layer can map them to status codes

package errors

import (
	"errors"
	"fmt"
)

// UnknownCause is reported when an upstream failure carries no usable description
const UnknownCause = "Unknown error"

// ValidationError represents a missing or malformed caller input
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// UpstreamError represents a failed call to the upstream icon API.
// StatusCode is zero when the request never produced a response.
type UpstreamError struct {
	URL        string
	StatusCode int
	Cause      error
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API responded with status: %d", e.StatusCode)
	}
	if e.Cause != nil && e.Cause.Error() != "" {
		return e.Cause.Error()
	}
	return UnknownCause
}

// Unwrap returns the underlying transport or decoding error
func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// AsValidation extracts a ValidationError from the chain
func AsValidation(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
