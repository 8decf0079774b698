// Package error defines domain-specific errors for the Motorista Real backend.
package error

import "errors"

// User profile domain errors.
var (
	// ErrInvalidDailyGoal is returned when the daily goal is negative.
	ErrInvalidDailyGoal = errors.New("daily goal must not be negative")

	// ErrInvalidGoalScope is returned when the goal scope is not a known value.
	ErrInvalidGoalScope = errors.New("invalid goal scope")
)

// UserErrorCode defines error codes for user profile errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	ErrCodeInvalidDailyGoal UserErrorCode = "USR-010001"
	ErrCodeInvalidGoalScope UserErrorCode = "USR-010002"
)

// UserError represents a user profile error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
