package monta

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid monta configuration")
	// ErrInvalidMethod indicates an HTTP verb outside GET/POST/PUT/DELETE
	ErrInvalidMethod = errors.New("unsupported request method")
	// ErrUnknownOperation indicates a name that is not in the endpoint catalog
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrMissingParam indicates a path placeholder without a value
	ErrMissingParam = errors.New("missing path parameter")
)

// APIError is returned when Monta answers with a status outside the accepted set
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Body == "" {
		return fmt.Sprintf("monta API error: status %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("monta API error: status %d: %s: %s", e.StatusCode, msg, e.Body)
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsServerError checks if Monta itself failed
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// TransportError is returned when no HTTP response was received at all
type TransportError struct {
	Method Method
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("monta request %s %s failed: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AsAPIError extracts an *APIError from err's chain
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
