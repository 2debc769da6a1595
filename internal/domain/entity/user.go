package entity

import (
	"time"

	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	coreport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
)

// User represents a loyalty-program member. The three point counters are
// bound by the invariant CurrentPoints == TotalEarned - TotalUsed, which
// holds whenever mutations go through Credit and Redeem.
type User struct {
	ID           string // Stable identifier, never reused
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	DateOfBirth  string
	Gender       string
	Nationality  string
	Phone        string
	Address      string
	MembershipID string

	CurrentPoints int
	TotalEarned   int
	TotalUsed     int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a member with a zero ledger. ID and MembershipID are
// supplied by the caller (the identity adapter generates both).
func NewUser(id, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == "" {
		return nil, errs.ErrInvalidUserID
	}
	if email == "" {
		return nil, errs.NewValidationError("email", "must not be empty")
	}

	now := timeProvider.Now()
	return &User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Tier derives the membership tier from the current balance.
func (u *User) Tier() Tier {
	return TierForPoints(u.CurrentPoints)
}

// Credit adds points to the balance. Used for both earned and bonus
// events; the distinction lives in the history entry, not the counters.
func (u *User) Credit(points int, timeProvider coreport.TimeProvider) error {
	if points <= 0 {
		return errs.ErrInvalidPointAmount
	}
	u.CurrentPoints += points
	u.TotalEarned += points
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Redeem subtracts points from the balance. Returns ErrInsufficientBalance
// when the member does not hold enough points; the counters are untouched
// in that case.
func (u *User) Redeem(points int, timeProvider coreport.TimeProvider) error {
	if points <= 0 {
		return errs.ErrInvalidPointAmount
	}
	if u.CurrentPoints < points {
		return errs.ErrInsufficientBalance
	}
	u.CurrentPoints -= points
	u.TotalUsed += points
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// LedgerConsistent reports whether the counter invariant holds.
func (u *User) LedgerConsistent() bool {
	return u.CurrentPoints == u.TotalEarned-u.TotalUsed && u.CurrentPoints >= 0
}
