package user

import (
	"context"
	"testing"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid credentials return the member", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		member := &entity.User{ID: "u-1", Email: "ada@example.com", PasswordHash: "$2a$10$hash"}
		m.repo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(member, nil).Once()
		m.hasher.EXPECT().Compare("$2a$10$hash", "s3cret-pass").Return(nil).Once()

		result, err := uc.Authenticate(ctx, "ada@example.com", "s3cret-pass")

		require.NoError(t, err)
		assert.Equal(t, "u-1", result.ID)
	})

	t.Run("Email is normalized before lookup", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		member := &entity.User{ID: "u-1", Email: "ada@example.com", PasswordHash: "hash"}
		m.repo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(member, nil).Once()
		m.hasher.EXPECT().Compare("hash", "s3cret-pass").Return(nil).Once()

		result, err := uc.Authenticate(ctx, " ADA@example.com ", "s3cret-pass")

		require.NoError(t, err)
		assert.Equal(t, "u-1", result.ID)
	})

	t.Run("Unknown email and wrong password produce the same error", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		m.repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, errs.ErrUserNotFound).Once()

		_, unknownEmailErr := uc.Authenticate(ctx, "ghost@example.com", "whatever")

		member := &entity.User{ID: "u-1", PasswordHash: "hash"}
		m.repo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(member, nil).Once()
		m.hasher.EXPECT().Compare("hash", "wrong").Return(errs.ErrInvalidCredentials).Once()
		m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Once()

		_, wrongPasswordErr := uc.Authenticate(ctx, "ada@example.com", "wrong")

		assert.Equal(t, errs.ErrInvalidCredentials, unknownEmailErr)
		assert.Equal(t, errs.ErrInvalidCredentials, wrongPasswordErr)
	})

	t.Run("Empty credentials fail without a lookup", func(t *testing.T) {
		uc, _ := newUserUseCaseWithMocks(t)

		_, err := uc.Authenticate(ctx, "", "password")
		assert.Equal(t, errs.ErrInvalidCredentials, err)

		_, err = uc.Authenticate(ctx, "ada@example.com", "")
		assert.Equal(t, errs.ErrInvalidCredentials, err)
	})

	t.Run("Database failure is not masked as bad credentials", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)

		m.repo.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := uc.Authenticate(ctx, "ada@example.com", "s3cret-pass")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestUserExists(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing member", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(mock.Anything, "u-1").Return(&entity.User{ID: "u-1"}, nil).Once()

		exists, err := uc.UserExists(ctx, "u-1")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Unknown member", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		exists, err := uc.UserExists(ctx, "ghost")

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Lookup failure is propagated", func(t *testing.T) {
		uc, m := newUserUseCaseWithMocks(t)
		m.repo.EXPECT().GetByID(mock.Anything, "u-1").Return(nil, errs.ErrDatabaseConnection).Once()

		exists, err := uc.UserExists(ctx, "u-1")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.False(t, exists)
	})
}
