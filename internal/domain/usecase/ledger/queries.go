package ledger

import (
	"context"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/usecase"
)

// GetBalance returns the member's point counters and derived tier.
func (s *Service) GetBalance(ctx context.Context, userID string) (*usecase.Balance, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.Balance{
		UserID:        user.ID,
		CurrentPoints: user.CurrentPoints,
		TotalEarned:   user.TotalEarned,
		TotalUsed:     user.TotalUsed,
		Tier:          user.Tier(),
	}, nil
}

// GetRequests returns the member's point requests, most recent first.
func (s *Service) GetRequests(ctx context.Context, userID string) ([]*entity.PointRequest, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	return s.requests.ListByUser(ctx, userID)
}

// GetRequestByID returns a single request.
func (s *Service) GetRequestByID(ctx context.Context, requestID string) (*entity.PointRequest, error) {
	if requestID == "" {
		return nil, errs.NewValidationError("requestId", "is required")
	}
	return s.requests.GetByID(ctx, requestID)
}

// GetHistory returns the member's history entries, most recent first.
func (s *Service) GetHistory(ctx context.Context, userID string) ([]*entity.PointHistoryEntry, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	return s.history.ListByUser(ctx, userID)
}
