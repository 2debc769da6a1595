package entity

import (
	"testing"
	"time"

	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	coremocks "github.com/skyair-rewards/loyalty-engine/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPointRequest(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	request := NewPointRequest("pr-1", "u-1", mockTime)

	assert.Equal(t, "pr-1", request.ID)
	assert.Equal(t, "u-1", request.UserID)
	assert.Equal(t, StatusPending, request.Status)
	assert.Equal(t, 0, request.PointsAwarded)
	assert.False(t, request.IsResolved())
	assert.Equal(t, fixedTime, request.CreatedAt)
	assert.Equal(t, fixedTime, request.UpdatedAt)
}

func TestPointRequestApprove(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Approve pending request", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		request := NewPointRequest("pr-1", "u-1", mockTime)
		err := request.Approve(1500, mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusApproved, request.Status)
		assert.Equal(t, 1500, request.PointsAwarded)
		assert.True(t, request.IsResolved())
	})

	t.Run("Approve requires a positive award", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		request := NewPointRequest("pr-1", "u-1", mockTime)

		assert.Equal(t, errs.ErrInvalidPointAmount, request.Approve(0, mockTime))
		assert.Equal(t, errs.ErrInvalidPointAmount, request.Approve(-100, mockTime))
		assert.Equal(t, StatusPending, request.Status)
	})

	t.Run("Approving an approved request fails", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		request := NewPointRequest("pr-1", "u-1", mockTime)
		require.NoError(t, request.Approve(1500, mockTime))

		err := request.Approve(2000, mockTime)

		assert.ErrorIs(t, err, errs.ErrRequestResolved)
		assert.Equal(t, 1500, request.PointsAwarded)
	})

	t.Run("Approving a rejected request fails", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		request := NewPointRequest("pr-1", "u-1", mockTime)
		require.NoError(t, request.Reject(mockTime))

		err := request.Approve(1500, mockTime)

		assert.ErrorIs(t, err, errs.ErrRequestResolved)
		assert.Equal(t, StatusRejected, request.Status)
		assert.Equal(t, 0, request.PointsAwarded)
	})
}

func TestPointRequestReject(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Reject pending request", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		request := NewPointRequest("pr-1", "u-1", mockTime)
		err := request.Reject(mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusRejected, request.Status)
		assert.Equal(t, 0, request.PointsAwarded)
		assert.True(t, request.IsResolved())
	})

	t.Run("Rejecting a resolved request fails", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()

		request := NewPointRequest("pr-1", "u-1", mockTime)
		require.NoError(t, request.Reject(mockTime))

		err := request.Reject(mockTime)

		assert.ErrorIs(t, err, errs.ErrRequestResolved)
	})
}

func TestRouteDescription(t *testing.T) {
	request := &PointRequest{
		FlightNumber:     "SA1234",
		DepartureAirport: "JFK",
		ArrivalAirport:   "LHR",
	}

	assert.Equal(t, "Flight SA1234 (JFK → LHR)", request.RouteDescription())
}
