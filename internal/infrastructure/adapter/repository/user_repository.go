package repository

import (
	"errors"
	"fmt"

	"context"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	coreport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to a domain entity
func modelToUserEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:            m.ID,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		DateOfBirth:   m.DateOfBirth,
		Gender:        m.Gender,
		Nationality:   m.Nationality,
		Phone:         m.Phone,
		Address:       m.Address,
		MembershipID:  m.MembershipID,
		CurrentPoints: m.CurrentPoints,
		TotalEarned:   m.TotalEarned,
		TotalUsed:     m.TotalUsed,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateEmail
	}
	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// GetByID retrieves a member by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}
	return modelToUserEntity(&userModel), nil
}

// GetByEmail retrieves a member by email address
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, "email = ?", email)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by email", result.Error, "")
	}
	return modelToUserEntity(&userModel), nil
}

// Create persists a new member
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:            user.ID,
		Email:         user.Email,
		PasswordHash:  user.PasswordHash,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		DateOfBirth:   user.DateOfBirth,
		Gender:        user.Gender,
		Nationality:   user.Nationality,
		Phone:         user.Phone,
		Address:       user.Address,
		MembershipID:  user.MembershipID,
		CurrentPoints: user.CurrentPoints,
		TotalEarned:   user.TotalEarned,
		TotalUsed:     user.TotalUsed,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Info("User created", map[string]any{
		"user_id":       user.ID,
		"membership_id": user.MembershipID,
	})
	return nil
}

// UpdateProfile updates the member's contact fields. Point counters are
// deliberately excluded; ApplyPoints is the only write path for those.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
			"date_of_birth": user.DateOfBirth,
			"gender":        user.Gender,
			"nationality":   user.Nationality,
			"phone":         user.Phone,
			"address":       user.Address,
			"updated_at":    user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating user profile", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// ApplyPoints mutates the point counters atomically. The member row is
// locked FOR UPDATE so the read-check-write sequence cannot interleave
// with a concurrent mutation; the surrounding transaction (when run inside
// the unit of work) extends the lock until commit.
func (r *UserRepository) ApplyPoints(ctx context.Context, userID string, entryType entity.HistoryType, points int) (*entity.User, error) {
	if points <= 0 {
		return nil, errs.ErrInvalidPointAmount
	}

	var userModel model.User
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, "id = ?", userID)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking user for points update", result.Error, userID)
	}

	// The counter rules live on the entity; the repository only locks
	// the row and persists what the entity computed
	user := modelToUserEntity(&userModel)
	var mutErr error
	switch entryType {
	case entity.HistoryEarned, entity.HistoryBonus:
		mutErr = user.Credit(points, r.timeProvider)
	case entity.HistoryRedeemed:
		mutErr = user.Redeem(points, r.timeProvider)
	default:
		return nil, errs.NewValidationError("type", "unknown history entry type")
	}
	if mutErr != nil {
		if errors.Is(mutErr, errs.ErrInsufficientBalance) {
			r.logger.Warn("Insufficient balance for redemption", map[string]any{
				"user_id":   userID,
				"requested": points,
				"available": user.CurrentPoints,
			})
			return nil, errs.NewInsufficientBalanceError(userID, points, user.CurrentPoints)
		}
		return nil, mutErr
	}

	result = r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"current_points": user.CurrentPoints,
			"total_earned":   user.TotalEarned,
			"total_used":     user.TotalUsed,
			"updated_at":     user.UpdatedAt,
		})
	if result.Error != nil {
		return nil, r.handleDatabaseError("applying points", result.Error, userID)
	}

	r.logger.Debug("Points applied", map[string]any{
		"user_id":     userID,
		"type":        string(entryType),
		"points":      points,
		"new_balance": user.CurrentPoints,
	})
	return user, nil
}
