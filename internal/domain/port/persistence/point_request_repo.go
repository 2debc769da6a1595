package persistence

import (
	"context"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
)

// PointRequestRepository defines essential methods to interact with point
// request data
type PointRequestRepository interface {
	// Create saves a new pending request
	//
	// Possible errors:
	// - ErrUserNotFound: If the referenced member does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, request *entity.PointRequest) error

	// GetByID retrieves a request by its ID
	//
	// Possible errors:
	// - ErrRequestNotFound: If the request doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.PointRequest, error)

	// ListByUser returns the member's requests ordered most-recent-first.
	// An empty slice, not an error, when the member has none.
	ListByUser(ctx context.Context, userID string) ([]*entity.PointRequest, error)

	// MarkResolved transitions a request out of pending with a
	// compare-and-set on status: the update only applies while the stored
	// status is still pending, so two concurrent resolutions cannot both
	// succeed. Returns the resolved request.
	//
	// Possible errors:
	// - ErrRequestNotFound: If the request doesn't exist
	// - ErrRequestResolved: If the request already left pending
	// - ErrDatabaseConnection: If database connection fails
	MarkResolved(ctx context.Context, id string, status entity.RequestStatus, pointsAwarded int) (*entity.PointRequest, error)
}
