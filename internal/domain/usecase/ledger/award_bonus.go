package ledger

import (
	"context"
	"strings"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
)

// AwardBonus credits promotional points outside the request workflow.
// Same atomicity as the approve path: balance and history move together.
func (s *Service) AwardBonus(ctx context.Context, userID string, points int, description string) (*entity.User, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if points <= 0 {
		return nil, errs.ErrInvalidPointAmount
	}
	if strings.TrimSpace(description) == "" {
		return nil, errs.NewValidationError("description", "is required")
	}

	var user *entity.User
	err := s.inTransaction(ctx, func(txCtx context.Context) error {
		users := s.uow.GetUserRepository(txCtx)

		updated, err := users.ApplyPoints(txCtx, userID, entity.HistoryBonus, points)
		if err != nil {
			return err
		}
		user = updated

		entry, err := entity.NewPointHistoryEntry(
			s.ids.NewID(),
			userID,
			entity.HistoryBonus,
			points,
			description,
			s.timeProvider,
		)
		if err != nil {
			return err
		}

		history := s.uow.GetPointHistoryRepository(txCtx)
		return history.Append(txCtx, entry)
	})
	if err != nil {
		s.logger.Error("Bonus award failed", map[string]any{
			"user_id": userID,
			"points":  points,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.metrics.BonusAwarded(points)
	s.logger.Info("Bonus points awarded", map[string]any{
		"user_id":     userID,
		"points":      points,
		"new_balance": user.CurrentPoints,
		"description": description,
	})
	return user, nil
}
