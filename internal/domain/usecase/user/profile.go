package user

import (
	"context"
	"strings"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/usecase"
)

// UpdateProfile applies the update to the stored member and returns the
// refreshed record.
func (u *UserUseCase) UpdateProfile(ctx context.Context, userID string, update usecase.ProfileUpdate) (*entity.User, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	member, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		if strings.TrimSpace(*update.FirstName) == "" {
			return nil, errs.NewValidationError("firstName", "must not be empty")
		}
		member.FirstName = strings.TrimSpace(*update.FirstName)
	}
	if update.LastName != nil {
		if strings.TrimSpace(*update.LastName) == "" {
			return nil, errs.NewValidationError("lastName", "must not be empty")
		}
		member.LastName = strings.TrimSpace(*update.LastName)
	}
	if update.DateOfBirth != nil {
		member.DateOfBirth = *update.DateOfBirth
	}
	if update.Gender != nil {
		member.Gender = *update.Gender
	}
	if update.Nationality != nil {
		member.Nationality = *update.Nationality
	}
	if update.Phone != nil {
		member.Phone = *update.Phone
	}
	if update.Address != nil {
		member.Address = *update.Address
	}
	member.UpdatedAt = u.timeProvider.Now()

	if err := u.userRepo.UpdateProfile(ctx, member); err != nil {
		u.logger.Error("Failed to update member profile", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return member, nil
}

// GetTierProgress derives the member's tier standing from the balance.
func (u *UserUseCase) GetTierProgress(ctx context.Context, userID string) (*usecase.TierProgress, error) {
	member, err := u.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.TierProgress{
		Tier:             member.Tier(),
		PointsToNextTier: entity.PointsToNextTier(member.CurrentPoints),
		ProgressPercent:  entity.TierProgressPercent(member.CurrentPoints),
	}, nil
}
