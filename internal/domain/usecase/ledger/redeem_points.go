package ledger

import (
	"context"
	"strings"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
)

// RedeemPoints spends points from the member's balance and records the
// redemption in the history, atomically. A redemption that exceeds the
// balance fails with InsufficientBalanceError and mutates nothing.
func (s *Service) RedeemPoints(ctx context.Context, userID string, points int, description string) (*entity.User, error) {
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

		updated, err := users.ApplyPoints(txCtx, userID, entity.HistoryRedeemed, points)
		if err != nil {
			return err
		}
		user = updated

		entry, err := entity.NewPointHistoryEntry(
			s.ids.NewID(),
			userID,
			entity.HistoryRedeemed,
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
		if errs.IsInsufficientBalanceError(err) {
			s.logger.Warn("Redemption refused", map[string]any{
				"user_id": userID,
				"points":  points,
				"error":   err.Error(),
			})
		} else {
			s.logger.Error("Redemption failed", map[string]any{
				"user_id": userID,
				"points":  points,
				"error":   err.Error(),
			})
		}
		return nil, err
	}

	s.metrics.PointsRedeemed(points)
	s.logger.Info("Points redeemed", map[string]any{
		"user_id":     userID,
		"points":      points,
		"new_balance": user.CurrentPoints,
		"description": description,
	})
	return user, nil
}
