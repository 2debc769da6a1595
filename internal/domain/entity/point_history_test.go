package entity

import (
	"testing"
	"time"

	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	coremocks "github.com/skyair-rewards/loyalty-engine/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPointHistoryEntry(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid entry", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		entry, err := NewPointHistoryEntry("ph-1", "u-1", HistoryEarned, 1500, "Flight SA1234 (JFK → LHR)", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "ph-1", entry.ID)
		assert.Equal(t, "u-1", entry.UserID)
		assert.Equal(t, HistoryEarned, entry.Type)
		assert.Equal(t, 1500, entry.Points)
		assert.Equal(t, "Flight SA1234 (JFK → LHR)", entry.Description)
		assert.Equal(t, fixedTime, entry.CreatedAt)
	})

	t.Run("Non-positive points are rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		entry, err := NewPointHistoryEntry("ph-1", "u-1", HistoryEarned, 0, "desc", mockTime)

		assert.Equal(t, errs.ErrInvalidPointAmount, err)
		assert.Nil(t, entry)
	})

	t.Run("Unknown type is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		entry, err := NewPointHistoryEntry("ph-1", "u-1", HistoryType("transfer"), 100, "desc", mockTime)

		assert.True(t, errs.IsValidationError(err))
		assert.Nil(t, entry)
	})
}

func TestHistoryEntryCredits(t *testing.T) {
	testCases := []struct {
		entryType HistoryType
		credits   bool
	}{
		{HistoryEarned, true},
		{HistoryBonus, true},
		{HistoryRedeemed, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.entryType), func(t *testing.T) {
			entry := &PointHistoryEntry{Type: tc.entryType}
			assert.Equal(t, tc.credits, entry.Credits())
		})
	}
}
