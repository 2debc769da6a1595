package ledger

import (
	"context"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/usecase"
)

// ResolveRequest decides a pending request. The approve path changes the
// request status, credits the member's balance and appends the history
// entry inside one transaction; a crash between the steps leaves none of
// them applied. Resolving a request that already left pending fails with
// ErrRequestResolved, so a caller retry can change the balance at most once.
func (s *Service) ResolveRequest(ctx context.Context, requestID string, decision usecase.Decision, pointsToAward int) (*entity.PointRequest, error) {
	if requestID == "" {
		return nil, errs.NewValidationError("requestId", "is required")
	}

	switch decision {
	case usecase.DecisionApprove:
		if pointsToAward <= 0 {
			return nil, errs.ErrInvalidPointAmount
		}
	case usecase.DecisionReject:
		pointsToAward = 0
	default:
		return nil, errs.NewValidationError("decision", "must be approve or reject")
	}

	var resolved *entity.PointRequest
	err := s.inTransaction(ctx, func(txCtx context.Context) error {
		requests := s.uow.GetPointRequestRepository(txCtx)

		status := entity.StatusRejected
		if decision == usecase.DecisionApprove {
			status = entity.StatusApproved
		}

		// Compare-and-set on status; a concurrent resolve loses here
		request, err := requests.MarkResolved(txCtx, requestID, status, pointsToAward)
		if err != nil {
			return err
		}
		resolved = request

		if decision == usecase.DecisionReject {
			return nil
		}

		users := s.uow.GetUserRepository(txCtx)
		if _, err := users.ApplyPoints(txCtx, request.UserID, entity.HistoryEarned, pointsToAward); err != nil {
			return err
		}

		entry, err := entity.NewPointHistoryEntry(
			s.ids.NewID(),
			request.UserID,
			entity.HistoryEarned,
			pointsToAward,
			request.RouteDescription(),
			s.timeProvider,
		)
		if err != nil {
			return err
		}

		history := s.uow.GetPointHistoryRepository(txCtx)
		return history.Append(txCtx, entry)
	})
	if err != nil {
		if errs.IsConflictError(err) || errs.IsNotFoundError(err) {
			s.logger.Warn("Point request resolution refused", map[string]any{
				"request_id": requestID,
				"decision":   string(decision),
				"error":      err.Error(),
			})
		} else {
			s.logger.Error("Point request resolution failed", map[string]any{
				"request_id": requestID,
				"decision":   string(decision),
				"error":      err.Error(),
			})
		}
		return nil, err
	}

	s.metrics.RequestResolved(decision == usecase.DecisionApprove, pointsToAward)
	s.logger.Info("Point request resolved", map[string]any{
		"request_id":     requestID,
		"user_id":        resolved.UserID,
		"decision":       string(decision),
		"points_awarded": pointsToAward,
	})
	return resolved, nil
}
