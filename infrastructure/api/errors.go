// Package api provides the HTTP client for the rating platform backend
// with built-in support for retries, rate limiting, metrics, and tracing.
//
// The package wraps every backend endpoint the client consumes behind
// the service interfaces in internal/ports while adding operational
// cross-cutting concerns through a middleware pattern. Payloads are
// validated at the boundary so the rest of the application operates on
// trusted, fully-typed domain values.
//
// Basic usage:
//
//	client, err := api.NewClient(api.ClientConfig{
//	    BaseURL: "http://localhost:5000/api",
//	    Token:   store.Token,
//	})
//	leaders, err := client.ListLeaders(ctx)
package api

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Common errors returned by the API client.
var (
	// ErrEmptyBaseURL indicates a client was configured without a backend URL.
	ErrEmptyBaseURL = errors.New("base URL cannot be empty")

	// ErrEmptyResponse indicates the backend returned an empty body where
	// a payload was required.
	ErrEmptyResponse = errors.New("empty response from backend")
)

// ErrorType classifies a backend failure for standardized handling,
// such as determining retryability and which UI treatment applies.
type ErrorType int

const (
	// ErrorTypeUnknown indicates an error of an undetermined category.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeNetwork indicates a client-side network problem; the
	// operation is abandoned and prior state retained.
	ErrorTypeNetwork
	// ErrorTypeTimeout indicates the request timed out.
	ErrorTypeTimeout
	// ErrorTypeAuthentication indicates missing or rejected credentials;
	// callers resolve it by redirecting to login.
	ErrorTypeAuthentication
	// ErrorTypeValidation indicates the backend rejected the payload;
	// forms surface it inline and retain entered values.
	ErrorTypeValidation
	// ErrorTypeConflict indicates a uniqueness violation, such as a
	// leader that already exists for a region and position.
	ErrorTypeConflict
	// ErrorTypeCooldown indicates a review submission inside the
	// re-review cooldown window. Rendered as informational text, not
	// an error.
	ErrorTypeCooldown
	// ErrorTypeServer indicates a problem on the backend's end.
	ErrorTypeServer
)

// APIError is a structured error from the backend. It normalizes
// endpoint-specific failures into a common format with a classified
// type and the HTTP status that produced it.
type APIError struct {
	// Type classifies the error into a standard category.
	Type ErrorType
	// StatusCode holds the HTTP status code, zero for transport errors.
	StatusCode int
	// Message contains the user-facing message from the backend.
	Message string
	// WrappedError holds the underlying error for chaining.
	WrappedError error
}

// Error satisfies the standard error interface.
func (e *APIError) Error() string {
	base := "backend error"
	if e.StatusCode > 0 {
		base += fmt.Sprintf(" (HTTP %d)", e.StatusCode)
	}
	if s := e.typeString(); s != "" {
		base += fmt.Sprintf(" [%s]", s)
	}
	if e.Message != "" {
		base += ": " + e.Message
	}
	if e.WrappedError != nil {
		base += fmt.Sprintf(": %v", e.WrappedError)
	}
	return base
}

// Unwrap returns the underlying error, supporting errors.Is / errors.As.
func (e *APIError) Unwrap() error { return e.WrappedError }

// IsRetryable reports whether a request failing with this error should
// be retried. Only transient transport and server-side failures
// qualify; validation, auth, conflict and cooldown failures never do.
func (e *APIError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeNetwork, ErrorTypeTimeout, ErrorTypeServer:
		return true
	default:
		return false
	}
}

func (e *APIError) typeString() string {
	switch e.Type {
	case ErrorTypeNetwork:
		return "network"
	case ErrorTypeTimeout:
		return "timeout"
	case ErrorTypeAuthentication:
		return "authentication"
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeConflict:
		return "conflict"
	case ErrorTypeCooldown:
		return "cooldown"
	case ErrorTypeServer:
		return "server_error"
	default:
		return ""
	}
}

// CooldownError is the distinguished rejection for a review submitted
// while the re-review window is still active. It carries the earliest
// date the backend will accept a new review for the pair.
type CooldownError struct {
	// RetryAfter is the backend-computed next-eligible date.
	RetryAfter time.Time
	// Message is the backend's informational text, if any.
	Message string
}

// Error satisfies the standard error interface.
func (e *CooldownError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("review cooldown active, retry after %s", e.RetryAfter.Format("2 Jan 2006"))
}

// NextEligibleAt implements ports.CooldownRejection.
func (e *CooldownError) NextEligibleAt() time.Time { return e.RetryAfter }

// IsCooldown reports whether err is a cooldown rejection and returns
// the next-eligible date when it is.
func IsCooldown(err error) (time.Time, bool) {
	var ce *CooldownError
	if errors.As(err, &ce) {
		return ce.RetryAfter, true
	}
	return time.Time{}, false
}

// IsDuplicateLeader reports whether err is the "leader already exists
// for this region and position" conflict.
func IsDuplicateLeader(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Type == ErrorTypeConflict
}

// IsAuthFailure reports whether err should be resolved by redirecting
// to the login view.
func IsAuthFailure(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Type == ErrorTypeAuthentication
}

// classifyHTTPError builds an APIError from an HTTP status code and the
// backend's message.
func classifyHTTPError(statusCode int, message string, err error) *APIError {
	var errType ErrorType
	switch statusCode {
	case 401, 403:
		errType = ErrorTypeAuthentication
	case 400, 422:
		errType = ErrorTypeValidation
	case 409:
		errType = ErrorTypeConflict
	case 429:
		errType = ErrorTypeCooldown
	case 500, 502, 503, 504:
		errType = ErrorTypeServer
	default:
		switch {
		case statusCode >= 400 && statusCode < 500:
			errType = ErrorTypeValidation
		case statusCode >= 500:
			errType = ErrorTypeServer
		default:
			errType = ErrorTypeUnknown
		}
	}
	return &APIError{Type: errType, StatusCode: statusCode, Message: message, WrappedError: err}
}

// classifyContextError builds an APIError from a context failure such
// as context.DeadlineExceeded or context.Canceled.
func classifyContextError(err error) *APIError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &APIError{Type: ErrorTypeTimeout, Message: "request deadline exceeded", WrappedError: err}
	case errors.Is(err, context.Canceled):
		return &APIError{Type: ErrorTypeNetwork, Message: "request canceled", WrappedError: err}
	default:
		return &APIError{Type: ErrorTypeNetwork, WrappedError: err}
	}
}
