package entity

import (
	"testing"
	"time"

	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	coremocks "github.com/skyair-rewards/loyalty-engine/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid member creation", func(t *testing.T) {
		user, err := NewUser("u-1", "ada@example.com", "hash", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, "hash", user.PasswordHash)
		assert.Equal(t, 0, user.CurrentPoints)
		assert.Equal(t, 0, user.TotalEarned)
		assert.Equal(t, 0, user.TotalUsed)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Empty ID should return error", func(t *testing.T) {
		user, err := NewUser("", "ada@example.com", "hash", mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, user)
	})

	t.Run("Empty email should return error", func(t *testing.T) {
		user, err := NewUser("u-1", "", "hash", mockTime)

		assert.Error(t, err)
		assert.True(t, errs.IsValidationError(err))
		assert.Nil(t, user)
	})
}

func TestUserCredit(t *testing.T) {
	initialTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	updateTime := time.Date(2023, 1, 1, 13, 0, 0, 0, time.UTC)

	t.Run("Credit adds to balance and total earned", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(initialTime).Once()

		user, _ := NewUser("u-1", "ada@example.com", "hash", mockTime)

		mockTime.EXPECT().Now().Return(updateTime).Once()
		err := user.Credit(500, mockTime)

		require.NoError(t, err)
		assert.Equal(t, 500, user.CurrentPoints)
		assert.Equal(t, 500, user.TotalEarned)
		assert.Equal(t, 0, user.TotalUsed)
		assert.Equal(t, initialTime, user.CreatedAt)
		assert.Equal(t, updateTime, user.UpdatedAt)
		assert.True(t, user.LedgerConsistent())
	})

	t.Run("Non-positive amounts are rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(initialTime).Once()

		user, _ := NewUser("u-1", "ada@example.com", "hash", mockTime)

		assert.Equal(t, errs.ErrInvalidPointAmount, user.Credit(0, mockTime))
		assert.Equal(t, errs.ErrInvalidPointAmount, user.Credit(-10, mockTime))
		assert.Equal(t, 0, user.CurrentPoints)
	})
}

func TestUserRedeem(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	newUserWithBalance := func(t *testing.T, points int) (*User, *coremocks.MockTimeProvider) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		user, err := NewUser("u-1", "ada@example.com", "hash", mockTime)
		require.NoError(t, err)
		require.NoError(t, user.Credit(points, mockTime))
		return user, mockTime
	}

	t.Run("Redeem subtracts balance and adds to total used", func(t *testing.T) {
		user, mockTime := newUserWithBalance(t, 1000)

		err := user.Redeem(300, mockTime)

		require.NoError(t, err)
		assert.Equal(t, 700, user.CurrentPoints)
		assert.Equal(t, 1000, user.TotalEarned)
		assert.Equal(t, 300, user.TotalUsed)
		assert.True(t, user.LedgerConsistent())
	})

	t.Run("Redeeming the full balance leaves zero", func(t *testing.T) {
		user, mockTime := newUserWithBalance(t, 1000)

		err := user.Redeem(1000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, 0, user.CurrentPoints)
		assert.True(t, user.LedgerConsistent())
	})

	t.Run("Redeeming more than the balance fails and changes nothing", func(t *testing.T) {
		user, mockTime := newUserWithBalance(t, 100)

		err := user.Redeem(101, mockTime)

		assert.Equal(t, errs.ErrInsufficientBalance, err)
		assert.Equal(t, 100, user.CurrentPoints)
		assert.Equal(t, 0, user.TotalUsed)
		assert.True(t, user.LedgerConsistent())
	})

	t.Run("Non-positive amounts are rejected", func(t *testing.T) {
		user, mockTime := newUserWithBalance(t, 100)

		assert.Equal(t, errs.ErrInvalidPointAmount, user.Redeem(0, mockTime))
		assert.Equal(t, errs.ErrInvalidPointAmount, user.Redeem(-5, mockTime))
	})
}

func TestLedgerConsistent(t *testing.T) {
	testCases := []struct {
		name     string
		user     User
		expected bool
	}{
		{"Zero ledger", User{}, true},
		{"Balanced counters", User{CurrentPoints: 700, TotalEarned: 1000, TotalUsed: 300}, true},
		{"Drifted balance", User{CurrentPoints: 500, TotalEarned: 1000, TotalUsed: 300}, false},
		{"Negative balance", User{CurrentPoints: -100, TotalEarned: 200, TotalUsed: 300}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.user.LedgerConsistent())
		})
	}
}
