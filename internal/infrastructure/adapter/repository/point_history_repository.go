package repository

import (
	"context"
	"fmt"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	coreport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PointHistoryRepository implements the PointHistoryRepository port using GORM
type PointHistoryRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPointHistoryRepository creates a new PointHistoryRepository instance
func NewPointHistoryRepository(db *gorm.DB, logger coreport.Logger) *PointHistoryRepository {
	return &PointHistoryRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func modelToHistoryEntity(m *model.PointHistoryEntry) *entity.PointHistoryEntry {
	return &entity.PointHistoryEntry{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        entity.HistoryType(m.Type),
		Points:      m.Points,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// Append stores a new history entry. There is no update or delete method
// on this repository; the log is append-only.
func (r *PointHistoryRepository) Append(ctx context.Context, entry *entity.PointHistoryEntry) error {
	entryModel := model.PointHistoryEntry{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Type:        string(entry.Type),
		Points:      entry.Points,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&entryModel)
	if result.Error != nil {
		r.logger.Error("Database error when appending history entry", map[string]any{
			"user_id": entry.UserID,
			"error":   result.Error.Error(),
		})
		if r.errorClassifier.IsForeignKeyError(result.Error) {
			return errs.ErrUserNotFound
		}
		if r.errorClassifier.IsConnectionError(result.Error) {
			return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
		}
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}
	return nil
}

// ListByUser returns the member's history, most recent first
func (r *PointHistoryRepository) ListByUser(ctx context.Context, userID string) ([]*entity.PointHistoryEntry, error) {
	var entryModels []model.PointHistoryEntry
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entryModels)
	if result.Error != nil {
		r.logger.Error("Database error when listing history", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		if r.errorClassifier.IsConnectionError(result.Error) {
			return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, result.Error.Error())
	}

	entries := make([]*entity.PointHistoryEntry, 0, len(entryModels))
	for i := range entryModels {
		entries = append(entries, modelToHistoryEntity(&entryModels[i]))
	}
	return entries, nil
}
