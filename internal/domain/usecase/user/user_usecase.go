package user

import (
	"context"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	authport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/auth"
	coreport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/persistence"
)

// UserUseCase handles member registration, authentication and profile logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	hasher       authport.PasswordHasher
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	hasher authport.PasswordHasher,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetUser returns the member with the given ID
func (u *UserUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	return u.userRepo.GetByID(ctx, userID)
}

// UserExists checks if a member with the given ID exists
func (u *UserUseCase) UserExists(ctx context.Context, userID string) (bool, error) {
	_, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
