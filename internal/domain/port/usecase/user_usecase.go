package usecase

import (
	"context"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
)

// RegisterInput carries a registration submission
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	DateOfBirth string
	Gender      string
	Nationality string
}

// ProfileUpdate carries the mutable contact fields of a member profile.
// Nil pointers mean "leave unchanged". Point counters and email are not
// reachable through profile updates.
type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *string
	Gender      *string
	Nationality *string
	Phone       *string
	Address     *string
}

// TierProgress describes where the member sits within the tier bands,
// used by the dashboard progress bar.
type TierProgress struct {
	Tier             entity.Tier
	PointsToNextTier int
	ProgressPercent  float64
}

// UserUseCase defines member registration, authentication and profile
// operations
type UserUseCase interface {
	// Register creates a new member with a zero ledger; an existing email
	// fails with ErrDuplicateEmail
	Register(ctx context.Context, in RegisterInput) (*entity.User, error)

	// Authenticate verifies an email/password pair and returns the member
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)

	// GetUser returns the member with the given ID
	GetUser(ctx context.Context, userID string) (*entity.User, error)

	// UserExists checks if a member with the given ID exists
	UserExists(ctx context.Context, userID string) (bool, error)

	// UpdateProfile applies the update to the stored member and returns
	// the refreshed record
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*entity.User, error)

	// GetTierProgress derives the member's tier standing from the balance
	GetTierProgress(ctx context.Context, userID string) (*TierProgress, error)
}
