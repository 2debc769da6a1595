package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4001
	CodeInvalidPointAmount  = 4002
	CodeInvalidUserID       = 4003
	CodeInsufficientBalance = 4004
	CodeInvalidCredentials  = 4010
	CodeForbidden           = 4030
	CodeUserNotFound        = 4040
	CodeRequestNotFound     = 4041
	CodeDuplicateEmail      = 4090
	CodeRequestResolved     = 4091

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrValidation is the root of the validation family; every malformed
	// or missing-input error wraps it so callers can match the category
	ErrValidation = errors.New("validation failed")

	// ErrInvalidPointAmount is returned when a point quantity is zero or negative
	ErrInvalidPointAmount = fmt.Errorf("%w: point amount must be positive", ErrValidation)

	// ErrInvalidUserID is returned when the user ID is empty
	ErrInvalidUserID = fmt.Errorf("%w: user ID must not be empty", ErrValidation)

	// ErrInvalidAirportCode is returned when an airport code is not in the served set
	ErrInvalidAirportCode = fmt.Errorf("%w: unknown airport code", ErrValidation)

	// ErrInvalidFlightNumber is returned when the flight number is malformed
	ErrInvalidFlightNumber = fmt.Errorf("%w: malformed flight number", ErrValidation)

	// ErrInvalidDepartureDate is returned when the departure date does not parse
	ErrInvalidDepartureDate = fmt.Errorf("%w: departure date must be a valid YYYY-MM-DD date", ErrValidation)

	// ErrInsufficientBalance is returned when a redemption exceeds the member's balance
	ErrInsufficientBalance = errors.New("insufficient point balance")

	// ErrUserNotFound is returned when the requested member doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrRequestNotFound is returned when the requested point request doesn't exist
	ErrRequestNotFound = errors.New("point request not found")

	// ErrRequestResolved is returned when resolving a request that already
	// left the pending state
	ErrRequestResolved = errors.New("point request already resolved")

	// ErrDuplicateEmail is returned when registering an email that is taken
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login fails verification
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrForbidden is returned when a member calls a back-office operation
	ErrForbidden = errors.New("operation requires back-office privileges")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidPointAmount):
		return CodeInvalidPointAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrRequestNotFound):
		return CodeRequestNotFound
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrRequestResolved):
		return CodeRequestResolved
	default:
		return CodeInternalServer
	}
}

// ValidationError carries the offending field alongside the reason
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// InsufficientBalanceError provides detailed error information for a
// rejected redemption
type InsufficientBalanceError struct {
	UserID    string
	Requested int
	Available int
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %s: requested %d, available %d",
		e.UserID, e.Requested, e.Available)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"user_id":    e.UserID,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID string, requested, available int) error {
	return &InsufficientBalanceError{
		UserID:    userID,
		Requested: requested,
		Available: available,
	}
}

// RequestStateError reports an attempt to resolve a request that is no
// longer pending
type RequestStateError struct {
	RequestID string
	Status    string
}

// Error implements the error interface
func (e *RequestStateError) Error() string {
	return fmt.Sprintf("point request %s already resolved with status %s", e.RequestID, e.Status)
}

// Is checks if the target error is an ErrRequestResolved
func (e *RequestStateError) Is(target error) bool {
	return target == ErrRequestResolved
}

// LogFields returns a map of fields for structured logging
func (e *RequestStateError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "request_state",
		"request_id": e.RequestID,
		"status":     e.Status,
		"error_code": CodeRequestResolved,
	}
}

// NewRequestStateError creates a new terminal-state violation error
func NewRequestStateError(requestID, status string) error {
	return &RequestStateError{RequestID: requestID, Status: status}
}

// IsValidationError checks if the error belongs to the validation family
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrRequestNotFound)
}

// IsConflictError checks if the error is a state or uniqueness conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrRequestResolved) || errors.Is(err, ErrDuplicateEmail)
}
