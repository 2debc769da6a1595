package ledger

import (
	"context"
	"testing"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Balance carries the derived tier", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		member := &entity.User{
			ID:            "u-1",
			CurrentPoints: 45000,
			TotalEarned:   52000,
			TotalUsed:     7000,
		}
		m.users.EXPECT().GetByID(mock.Anything, "u-1").Return(member, nil).Once()

		balance, err := svc.GetBalance(ctx, "u-1")

		require.NoError(t, err)
		assert.Equal(t, 45000, balance.CurrentPoints)
		assert.Equal(t, 52000, balance.TotalEarned)
		assert.Equal(t, 7000, balance.TotalUsed)
		assert.Equal(t, entity.TierGold, balance.Tier)
	})

	t.Run("Empty user ID", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		balance, err := svc.GetBalance(ctx, "")

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, balance)
	})

	t.Run("Unknown member", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.users.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		balance, err := svc.GetBalance(ctx, "ghost")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, balance)
	})
}

func TestGetRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("Member with no requests gets an empty slice", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)
		m.requests.EXPECT().ListByUser(mock.Anything, "u-1").Return([]*entity.PointRequest{}, nil).Once()

		requests, err := svc.GetRequests(ctx, "u-1")

		require.NoError(t, err)
		assert.Empty(t, requests)
	})

	t.Run("Empty user ID", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		requests, err := svc.GetRequests(ctx, "")

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, requests)
	})
}

func TestGetRequestByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		request := &entity.PointRequest{ID: "pr-1", UserID: "u-1", Status: entity.StatusPending}
		m.requests.EXPECT().GetByID(mock.Anything, "pr-1").Return(request, nil).Once()

		result, err := svc.GetRequestByID(ctx, "pr-1")

		require.NoError(t, err)
		assert.Equal(t, "pr-1", result.ID)
	})

	t.Run("Empty request ID", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		result, err := svc.GetRequestByID(ctx, "")

		assert.True(t, errs.IsValidationError(err))
		assert.Nil(t, result)
	})
}

func TestGetHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("Entries come back as stored", func(t *testing.T) {
		svc, m := newServiceWithMocks(t)

		entries := []*entity.PointHistoryEntry{
			{ID: "ph-2", Type: entity.HistoryRedeemed, Points: 300},
			{ID: "ph-1", Type: entity.HistoryEarned, Points: 1500},
		}
		m.history.EXPECT().ListByUser(mock.Anything, "u-1").Return(entries, nil).Once()

		result, err := svc.GetHistory(ctx, "u-1")

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "ph-2", result[0].ID)
	})

	t.Run("Empty user ID", func(t *testing.T) {
		svc, _ := newServiceWithMocks(t)

		result, err := svc.GetHistory(ctx, "")

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, result)
	})
}
