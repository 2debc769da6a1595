package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating writes across multiple
// repositories so that a request-status change, a balance change and a
// history insertion commit together or not at all
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetPointRequestRepository returns a request repository bound to the current transaction
	GetPointRequestRepository(ctx context.Context) PointRequestRepository

	// GetPointHistoryRepository returns a history repository bound to the current transaction
	GetPointHistoryRepository(ctx context.Context) PointHistoryRepository
}
