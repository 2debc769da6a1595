package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	coremocks "github.com/skyair-rewards/loyalty-engine/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userColumns() []string {
	return []string{
		"id", "email", "password_hash", "first_name", "last_name",
		"date_of_birth", "gender", "nationality", "phone", "address",
		"membership_id", "current_points", "total_earned", "total_used",
		"created_at", "updated_at",
	}
}

func TestUserRepositoryApplyPoints(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	appliedAt := time.Date(2024, 5, 11, 10, 0, 0, 0, time.UTC)

	memberRow := func(current, earned, used int) *sqlmock.Rows {
		return sqlmock.NewRows(userColumns()).
			AddRow("u-1", "ana@example.com", "hash", "Ana", "Silva",
				"1990-01-01", "female", "BR", "", "",
				"SA-2024-000001", current, earned, used,
				createdAt, createdAt)
	}

	t.Run("Earned entry credits the balance and the lifetime counter", func(t *testing.T) {
		db, mock := newMockDB(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := coremocks.NewMockLogger(t)
		repo := NewUserRepository(db, timeProvider, logger)

		timeProvider.EXPECT().Now().Return(appliedAt).Once()
		mock.ExpectQuery(`SELECT .* FROM "users" WHERE id = \$1 .* FOR UPDATE`).
			WillReturnRows(memberRow(1000, 1500, 500))
		mock.ExpectExec(`UPDATE "users" SET .* WHERE id = `).
			WillReturnResult(sqlmock.NewResult(0, 1))
		logger.EXPECT().Debug("Points applied", map[string]any{
			"user_id":     "u-1",
			"type":        string(entity.HistoryEarned),
			"points":      750,
			"new_balance": 1750,
		}).Once()

		user, err := repo.ApplyPoints(ctx, "u-1", entity.HistoryEarned, 750)

		require.NoError(t, err)
		assert.Equal(t, 1750, user.CurrentPoints)
		assert.Equal(t, 2250, user.TotalEarned)
		assert.Equal(t, 500, user.TotalUsed)
		assert.True(t, user.LedgerConsistent())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redeemed entry debits the balance", func(t *testing.T) {
		db, mock := newMockDB(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := coremocks.NewMockLogger(t)
		repo := NewUserRepository(db, timeProvider, logger)

		timeProvider.EXPECT().Now().Return(appliedAt).Once()
		mock.ExpectQuery(`SELECT .* FROM "users" WHERE id = \$1 .* FOR UPDATE`).
			WillReturnRows(memberRow(1000, 1500, 500))
		mock.ExpectExec(`UPDATE "users" SET .* WHERE id = `).
			WillReturnResult(sqlmock.NewResult(0, 1))
		logger.EXPECT().Debug("Points applied", map[string]any{
			"user_id":     "u-1",
			"type":        string(entity.HistoryRedeemed),
			"points":      400,
			"new_balance": 600,
		}).Once()

		user, err := repo.ApplyPoints(ctx, "u-1", entity.HistoryRedeemed, 400)

		require.NoError(t, err)
		assert.Equal(t, 600, user.CurrentPoints)
		assert.Equal(t, 1500, user.TotalEarned)
		assert.Equal(t, 900, user.TotalUsed)
		assert.True(t, user.LedgerConsistent())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redemption beyond the balance leaves the row untouched", func(t *testing.T) {
		db, mock := newMockDB(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := coremocks.NewMockLogger(t)
		repo := NewUserRepository(db, timeProvider, logger)

		mock.ExpectQuery(`SELECT .* FROM "users" WHERE id = \$1 .* FOR UPDATE`).
			WillReturnRows(memberRow(100, 600, 500))
		logger.EXPECT().Warn("Insufficient balance for redemption", map[string]any{
			"user_id":   "u-1",
			"requested": 500,
			"available": 100,
		}).Once()

		user, err := repo.ApplyPoints(ctx, "u-1", entity.HistoryRedeemed, 500)

		require.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		var balErr *errs.InsufficientBalanceError
		require.ErrorAs(t, err, &balErr)
		assert.Equal(t, 500, balErr.Requested)
		assert.Equal(t, 100, balErr.Available)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Non-positive amount never reaches the database", func(t *testing.T) {
		db, mock := newMockDB(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := coremocks.NewMockLogger(t)
		repo := NewUserRepository(db, timeProvider, logger)

		user, err := repo.ApplyPoints(ctx, "u-1", entity.HistoryEarned, 0)

		require.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidPointAmount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown member reports not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := coremocks.NewMockLogger(t)
		repo := NewUserRepository(db, timeProvider, logger)

		mock.ExpectQuery(`SELECT .* FROM "users" WHERE id = \$1 .* FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows(userColumns()))
		logger.EXPECT().Warn("User not found", map[string]any{
			"user_id": "u-1",
		}).Once()

		user, err := repo.ApplyPoints(ctx, "u-1", entity.HistoryEarned, 100)

		require.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
