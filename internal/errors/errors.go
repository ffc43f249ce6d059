// Package errors provides custom error types for the agent backend client.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common cases
var (
	ErrInvalidResponse = errors.New("invalid response format")
	ErrRequestTimedOut = errors.New("request timed out")
)

// APIError represents a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error at %s: %s", e.Endpoint, e.Message)
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// TimeoutError represents a request that was aborted after its deadline.
type TimeoutError struct {
	Endpoint string
}

func (e *TimeoutError) Error() string {
	if e.Endpoint == "" {
		return "request timed out"
	}
	return fmt.Sprintf("request to %s timed out", e.Endpoint)
}

// Is allows comparison with the ErrRequestTimedOut sentinel
func (e *TimeoutError) Is(target error) bool {
	if target == ErrRequestTimedOut {
		return true
	}
	_, ok := target.(*TimeoutError)
	return ok
}

// NewTimeoutError creates a new TimeoutError
func NewTimeoutError(endpoint string) *TimeoutError {
	return &TimeoutError{Endpoint: endpoint}
}

// NetworkError represents a fetch-level failure (DNS, connection refused)
// where no HTTP response was received at all.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure at %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(endpoint string, err error) *NetworkError {
	return &NetworkError{Endpoint: endpoint, Err: err}
}

// ParseError represents a response body the client could not interpret.
type ParseError struct {
	Message  string
	Endpoint string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with the ErrInvalidResponse sentinel
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError
func NewParseError(message, endpoint string) *ParseError {
	return &ParseError{Message: message, Endpoint: endpoint}
}

// IsTimeoutError reports whether err is a request timeout.
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrRequestTimedOut)
}

// IsNetworkError reports whether err is a fetch-level network failure.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsParseError reports whether err is a malformed-response error.
func IsParseError(err error) bool {
	return errors.Is(err, ErrInvalidResponse)
}

// HTTPStatus extracts the HTTP status code from an error chain.
// Returns 0 when no APIError is present.
func HTTPStatus(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	return 0
}

// Category classifies a failure for user-facing remediation. Every failed
// chat exchange maps to exactly one category.
type Category int

const (
	// CategoryGeneric covers everything the other categories don't.
	CategoryGeneric Category = iota
	// CategoryTimeout is a request aborted after its deadline.
	CategoryTimeout
	// CategoryServiceStarting is HTTP 503: the agent is still loading tools.
	CategoryServiceStarting
	// CategoryServerError is any other HTTP 5xx.
	CategoryServerError
	// CategoryNotFound is HTTP 404: the endpoint does not exist.
	CategoryNotFound
	// CategoryNetwork is a fetch-level failure with no HTTP response.
	CategoryNetwork
)

// String returns a short identifier for the category.
func (c Category) String() string {
	switch c {
	case CategoryTimeout:
		return "timeout"
	case CategoryServiceStarting:
		return "service-starting"
	case CategoryServerError:
		return "server-error"
	case CategoryNotFound:
		return "not-found"
	case CategoryNetwork:
		return "network-failure"
	default:
		return "generic"
	}
}

// Classify maps an error to its remediation category.
func Classify(err error) Category {
	switch {
	case err == nil:
		return CategoryGeneric
	case IsTimeoutError(err):
		return CategoryTimeout
	case HTTPStatus(err) == http.StatusServiceUnavailable:
		return CategoryServiceStarting
	case HTTPStatus(err) >= 500:
		return CategoryServerError
	case HTTPStatus(err) == http.StatusNotFound:
		return CategoryNotFound
	case IsNetworkError(err):
		return CategoryNetwork
	default:
		return CategoryGeneric
	}
}
