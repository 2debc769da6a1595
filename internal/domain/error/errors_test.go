package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", ErrValidation, 4001},
		{"InvalidPointAmount", ErrInvalidPointAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"InsufficientBalance", ErrInsufficientBalance, 4004},
		{"InvalidCredentials", ErrInvalidCredentials, 4010},
		{"Forbidden", ErrForbidden, 4030},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"RequestNotFound", ErrRequestNotFound, 4041},
		{"DuplicateEmail", ErrDuplicateEmail, 4090},
		{"RequestResolved", ErrRequestResolved, 4091},
		{"InvalidAirportCode", ErrInvalidAirportCode, 4001},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestValidationErrorFamily(t *testing.T) {
	// Every shape error must match the family root through errors.Is
	familyErrs := []error{
		ErrInvalidPointAmount,
		ErrInvalidUserID,
		ErrInvalidAirportCode,
		ErrInvalidFlightNumber,
		ErrInvalidDepartureDate,
		NewValidationError("email", "must be a valid email address"),
	}
	for _, err := range familyErrs {
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%v should match ErrValidation", err)
		}
		if !IsValidationError(err) {
			t.Errorf("IsValidationError(%v) = false, want true", err)
		}
	}

	if IsValidationError(ErrUserNotFound) {
		t.Error("ErrUserNotFound should not be a validation error")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("departureAirport", "is required")

	expected := "validation failed for departureAirport: is required"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("expected a *ValidationError")
	}
	fields := ve.LogFields()
	if fields["field"] != "departureAirport" {
		t.Errorf("LogFields field = %v, want departureAirport", fields["field"])
	}
	if fields["error_code"] != CodeValidation {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeValidation)
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError("u-1", 500, 120)

	expected := "insufficient balance for user u-1: requested 500, available 120"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Error("detailed error should match ErrInsufficientBalance")
	}
	if !IsInsufficientBalanceError(err) {
		t.Error("IsInsufficientBalanceError should report true")
	}
	if ErrorCode(err) != CodeInsufficientBalance {
		t.Errorf("ErrorCode = %d, want %d", ErrorCode(err), CodeInsufficientBalance)
	}
}

func TestRequestStateError(t *testing.T) {
	err := NewRequestStateError("pr-1", "approved")

	expected := "point request pr-1 already resolved with status approved"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, ErrRequestResolved) {
		t.Error("detailed error should match ErrRequestResolved")
	}
	if !IsConflictError(err) {
		t.Error("IsConflictError should report true")
	}
	if ErrorCode(err) != CodeRequestResolved {
		t.Errorf("ErrorCode = %d, want %d", ErrorCode(err), CodeRequestResolved)
	}
}

func TestPredicates(t *testing.T) {
	if !IsNotFoundError(ErrUserNotFound) || !IsNotFoundError(ErrRequestNotFound) {
		t.Error("IsNotFoundError should match both not-found sentinels")
	}
	if IsNotFoundError(ErrDuplicateEmail) {
		t.Error("ErrDuplicateEmail is not a not-found error")
	}
	if !IsConflictError(ErrDuplicateEmail) || !IsConflictError(ErrRequestResolved) {
		t.Error("IsConflictError should match both conflict sentinels")
	}
	if IsConflictError(ErrUserNotFound) {
		t.Error("ErrUserNotFound is not a conflict error")
	}
}
