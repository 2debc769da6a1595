package persistence

import (
	"context"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
)

// UserRepository defines essential methods to interact with member data
type UserRepository interface {
	// GetByID retrieves a member by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If no member with this ID exists
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByEmail retrieves a member by email address
	//
	// Possible errors:
	// - ErrUserNotFound: If no member with this email exists
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new member
	//
	// Possible errors:
	// - ErrDuplicateEmail: If the email is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile updates the member's contact fields. Point counters
	// are not touched by this method.
	//
	// Possible errors:
	// - ErrUserNotFound: If the member doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateProfile(ctx context.Context, user *entity.User) error

	// ApplyPoints mutates the point counters atomically: a credit adds to
	// CurrentPoints and TotalEarned, a redemption subtracts from
	// CurrentPoints and adds to TotalUsed. The row is locked for the
	// duration of the surrounding transaction.
	//
	// Possible errors:
	// - ErrUserNotFound: If the member doesn't exist
	// - ErrInsufficientBalance: If a redemption exceeds the balance
	// - ErrDatabaseConnection: If database connection fails
	ApplyPoints(ctx context.Context, userID string, entryType entity.HistoryType, points int) (*entity.User, error)
}
