package domain

import (
	"errors"
	"fmt"
)

// Common domain errors.
var (
	// ErrUnknownLevel indicates a level token outside the recognized set.
	ErrUnknownLevel = errors.New("unknown level")

	// ErrUnknownPosition indicates a position token outside the recognized set.
	ErrUnknownPosition = errors.New("unknown position")

	// ErrRatingOutOfRange indicates a rating value outside the 1-4 scale.
	ErrRatingOutOfRange = errors.New("rating outside the 1-4 scale")

	// ErrLeaderNotFound indicates a leader id absent from the current
	// listing even after a refetch.
	ErrLeaderNotFound = errors.New("leader not found")

	// ErrNotSignedIn indicates an operation that requires a session.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrNotAdmin indicates an admin-only operation attempted by an
	// ordinary user. Callers resolve this by redirecting, not by
	// showing an error dialog.
	ErrNotAdmin = errors.New("admin role required")
)

// ValidationError collects one or more validation failures for an
// entity so forms can surface them inline while retaining entered
// values.
type ValidationError struct {
	// Entity names what failed validation.
	Entity string

	// Errors lists the individual failure messages.
	Errors []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation error for %s: %s", e.Entity, e.Errors[0])
	}
	return fmt.Sprintf("validation errors for %s: %v", e.Entity, e.Errors)
}

// AddError appends a failure message.
func (e *ValidationError) AddError(msg string) { e.Errors = append(e.Errors, msg) }

// HasErrors reports whether any failure was recorded.
func (e *ValidationError) HasErrors() bool { return len(e.Errors) > 0 }

// NewValidationError creates an empty ValidationError for the entity.
func NewValidationError(entity string) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Errors: make([]string, 0),
	}
}
