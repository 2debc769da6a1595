package user

import (
	"context"
	"testing"
	"time"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)

	storedMember := func() *entity.User {
		return &entity.User{
			ID:          "u-1",
			Email:       "ada@example.com",
			FirstName:   "Ada",
			LastName:    "Lovelace",
			DateOfBirth: "1990-01-01",
			Gender:      "prefer-not-to-say",
			Nationality: "other",
		}
	}

	t.Run("Only provided fields change", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		m.repo.EXPECT().GetByID(mock.Anything, "u-1").Return(storedMember(), nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Once()
		m.repo.EXPECT().UpdateProfile(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Phone == "+44 20 7946 0000" &&
				u.FirstName == "Ada" &&
				u.Nationality == "other"
		})).Return(nil).Once()

		member, err := uc.UpdateProfile(ctx, "u-1", usecase.ProfileUpdate{
			Phone: strPtr("+44 20 7946 0000"),
		})

		require.NoError(t, err)
		assert.Equal(t, "+44 20 7946 0000", member.Phone)
		assert.Equal(t, "Ada", member.FirstName)
		assert.Equal(t, fixedTime, member.UpdatedAt)
	})

	t.Run("Names cannot be blanked", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		m.repo.EXPECT().GetByID(mock.Anything, "u-1").Return(storedMember(), nil).Twice()

		_, err := uc.UpdateProfile(ctx, "u-1", usecase.ProfileUpdate{FirstName: strPtr("  ")})
		assert.True(t, errs.IsValidationError(err))

		_, err = uc.UpdateProfile(ctx, "u-1", usecase.ProfileUpdate{LastName: strPtr("")})
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Empty user ID", func(t *testing.T) {
		uc, _ := newUserUseCaseWithMocks(t)

		member, err := uc.UpdateProfile(ctx, "", usecase.ProfileUpdate{})

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, member)
	})

	t.Run("Unknown member", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		member, err := uc.UpdateProfile(ctx, "ghost", usecase.ProfileUpdate{Phone: strPtr("123")})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, member)
	})

	t.Run("Store failure is propagated", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		m.repo.EXPECT().GetByID(mock.Anything, "u-1").Return(storedMember(), nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Once()
		m.repo.EXPECT().UpdateProfile(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		m.logger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		member, err := uc.UpdateProfile(ctx, "u-1", usecase.ProfileUpdate{Address: strPtr("12 Crescent Rd")})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Nil(t, member)
	})
}

func TestGetTierProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("Gold member half way to Platinum", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		member := &entity.User{ID: "u-1", CurrentPoints: 45000}
		m.repo.EXPECT().GetByID(mock.Anything, "u-1").Return(member, nil).Once()

		progress, err := uc.GetTierProgress(ctx, "u-1")

		require.NoError(t, err)
		assert.Equal(t, entity.TierGold, progress.Tier)
		assert.Equal(t, 15000, progress.PointsToNextTier)
		assert.Equal(t, float64(50), progress.ProgressPercent)
	})

	t.Run("Platinum member is capped", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		member := &entity.User{ID: "u-1", CurrentPoints: 80000}
		m.repo.EXPECT().GetByID(mock.Anything, "u-1").Return(member, nil).Once()

		progress, err := uc.GetTierProgress(ctx, "u-1")

		require.NoError(t, err)
		assert.Equal(t, entity.TierPlatinum, progress.Tier)
		assert.Equal(t, 0, progress.PointsToNextTier)
		assert.Equal(t, float64(100), progress.ProgressPercent)
	})

	t.Run("Unknown member", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		progress, err := uc.GetTierProgress(ctx, "ghost")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, progress)
	})
}
