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
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newMockDB opens a GORM session over a sqlmock connection so repository
// queries can be asserted without a running database.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func requestColumns() []string {
	return []string{
		"id", "user_id", "flight_number", "departure_airport", "arrival_airport",
		"departure_date", "additional_notes", "status", "points_awarded",
		"created_at", "updated_at",
	}
}

func TestPointRequestRepositoryMarkResolved(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	resolvedAt := time.Date(2024, 5, 11, 10, 0, 0, 0, time.UTC)

	pendingRow := func() *sqlmock.Rows {
		return sqlmock.NewRows(requestColumns()).
			AddRow("pr-1", "u-1", "SA1234", "JFK", "LHR",
				"2024-05-01", "", string(entity.StatusPending), 0,
				createdAt, createdAt)
	}

	t.Run("Pending request is approved and persisted", func(t *testing.T) {
		db, mock := newMockDB(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := coremocks.NewMockLogger(t)
		repo := NewPointRequestRepository(db, timeProvider, logger)

		timeProvider.EXPECT().Now().Return(resolvedAt).Once()
		mock.ExpectQuery(`SELECT .* FROM "point_requests" WHERE id = \$1 .* FOR UPDATE`).
			WillReturnRows(pendingRow())
		mock.ExpectExec(`UPDATE "point_requests" SET .* WHERE id = .* AND status = `).
			WillReturnResult(sqlmock.NewResult(0, 1))

		request, err := repo.MarkResolved(ctx, "pr-1", entity.StatusApproved, 1500)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusApproved, request.Status)
		assert.Equal(t, 1500, request.PointsAwarded)
		assert.Equal(t, resolvedAt, request.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Pending request is rejected without an award", func(t *testing.T) {
		db, mock := newMockDB(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := coremocks.NewMockLogger(t)
		repo := NewPointRequestRepository(db, timeProvider, logger)

		timeProvider.EXPECT().Now().Return(resolvedAt).Once()
		mock.ExpectQuery(`SELECT .* FROM "point_requests" WHERE id = \$1 .* FOR UPDATE`).
			WillReturnRows(pendingRow())
		mock.ExpectExec(`UPDATE "point_requests" SET .* WHERE id = .* AND status = `).
			WillReturnResult(sqlmock.NewResult(0, 1))

		request, err := repo.MarkResolved(ctx, "pr-1", entity.StatusRejected, 0)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusRejected, request.Status)
		assert.Equal(t, 0, request.PointsAwarded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Second resolution is refused without touching the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := coremocks.NewMockLogger(t)
		repo := NewPointRequestRepository(db, timeProvider, logger)

		approvedRow := sqlmock.NewRows(requestColumns()).
			AddRow("pr-1", "u-1", "SA1234", "JFK", "LHR",
				"2024-05-01", "", string(entity.StatusApproved), 1500,
				createdAt, resolvedAt)
		mock.ExpectQuery(`SELECT .* FROM "point_requests" WHERE id = \$1 .* FOR UPDATE`).
			WillReturnRows(approvedRow)
		logger.EXPECT().Warn("Attempt to resolve a non-pending point request", map[string]any{
			"request_id": "pr-1",
			"status":     string(entity.StatusApproved),
		}).Once()

		request, err := repo.MarkResolved(ctx, "pr-1", entity.StatusApproved, 2000)

		require.Error(t, err)
		assert.Nil(t, request)
		assert.ErrorIs(t, err, errs.ErrRequestResolved)
		var stateErr *errs.RequestStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, string(entity.StatusApproved), stateErr.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown request ID reports not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := coremocks.NewMockLogger(t)
		repo := NewPointRequestRepository(db, timeProvider, logger)

		mock.ExpectQuery(`SELECT .* FROM "point_requests" WHERE id = \$1 .* FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows(requestColumns()))

		request, err := repo.MarkResolved(ctx, "missing", entity.StatusApproved, 1500)

		require.Error(t, err)
		assert.Nil(t, request)
		assert.ErrorIs(t, err, errs.ErrRequestNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unsupported target status is rejected", func(t *testing.T) {
		db, mock := newMockDB(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := coremocks.NewMockLogger(t)
		repo := NewPointRequestRepository(db, timeProvider, logger)

		mock.ExpectQuery(`SELECT .* FROM "point_requests" WHERE id = \$1 .* FOR UPDATE`).
			WillReturnRows(pendingRow())

		request, err := repo.MarkResolved(ctx, "pr-1", entity.StatusPending, 0)

		require.Error(t, err)
		assert.Nil(t, request)
		assert.True(t, errs.IsValidationError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Row resolved between read and write reports its state", func(t *testing.T) {
		db, mock := newMockDB(t)
		timeProvider := coremocks.NewMockTimeProvider(t)
		logger := coremocks.NewMockLogger(t)
		repo := NewPointRequestRepository(db, timeProvider, logger)

		timeProvider.EXPECT().Now().Return(resolvedAt).Once()
		mock.ExpectQuery(`SELECT .* FROM "point_requests" WHERE id = \$1 .* FOR UPDATE`).
			WillReturnRows(pendingRow())
		mock.ExpectExec(`UPDATE "point_requests" SET .* WHERE id = .* AND status = `).
			WillReturnResult(sqlmock.NewResult(0, 0))
		rejectedRow := sqlmock.NewRows(requestColumns()).
			AddRow("pr-1", "u-1", "SA1234", "JFK", "LHR",
				"2024-05-01", "", string(entity.StatusRejected), 0,
				createdAt, resolvedAt)
		mock.ExpectQuery(`SELECT .* FROM "point_requests" WHERE id = \$1`).
			WillReturnRows(rejectedRow)

		request, err := repo.MarkResolved(ctx, "pr-1", entity.StatusApproved, 1500)

		require.Error(t, err)
		assert.Nil(t, request)
		assert.ErrorIs(t, err, errs.ErrRequestResolved)
		var stateErr *errs.RequestStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, string(entity.StatusRejected), stateErr.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
