package ledger

import (
	"context"
	"fmt"

	coreport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/persistence"
)

// Service is the ledger and request-workflow engine. It owns the lifecycle
// of a point request and the consistency of the derived balance and the
// history log. Every caller passes an already-resolved member identity;
// the engine holds no session state.
type Service struct {
	uow          persistence.UnitOfWork
	users        persistence.UserRepository
	requests     persistence.PointRequestRepository
	history      persistence.PointHistoryRepository
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.MetricsRecorder
}

// NewService creates the engine. The plain repositories serve reads and
// request submission; balance-affecting writes go through the unit of work.
func NewService(
	uow persistence.UnitOfWork,
	users persistence.UserRepository,
	requests persistence.PointRequestRepository,
	history persistence.PointHistoryRepository,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.MetricsRecorder,
) *Service {
	if metrics == nil {
		metrics = coreport.NoopMetricsRecorder{}
	}
	return &Service{
		uow:          uow,
		users:        users,
		requests:     requests,
		history:      history,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
	}
}

// inTransaction runs fn inside a single unit of work. A failure in fn or
// in commit leaves the store untouched.
func (s *Service) inTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back transaction", map[string]any{
				"error":          rbErr.Error(),
				"original_error": err.Error(),
			})
		}
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
