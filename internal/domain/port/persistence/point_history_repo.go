package persistence

import (
	"context"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
)

// PointHistoryRepository defines methods for the append-only history log
type PointHistoryRepository interface {
	// Append stores a new history entry. Entries are never updated or
	// deleted afterwards.
	//
	// Possible errors:
	// - ErrUserNotFound: If the referenced member does not exist
	// - ErrDatabaseConnection: If database connection fails
	Append(ctx context.Context, entry *entity.PointHistoryEntry) error

	// ListByUser returns the member's history ordered most-recent-first.
	// An empty slice, not an error, when the member has none.
	ListByUser(ctx context.Context, userID string) ([]*entity.PointHistoryEntry, error)
}
