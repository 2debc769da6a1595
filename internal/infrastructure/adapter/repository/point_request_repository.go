package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	coreport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
	"github.com/skyair-rewards/loyalty-engine/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PointRequestRepository implements the PointRequestRepository port using GORM
type PointRequestRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPointRequestRepository creates a new PointRequestRepository instance
func NewPointRequestRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *PointRequestRepository {
	return &PointRequestRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func modelToRequestEntity(m *model.PointRequest) *entity.PointRequest {
	return &entity.PointRequest{
		ID:               m.ID,
		UserID:           m.UserID,
		FlightNumber:     m.FlightNumber,
		DepartureAirport: m.DepartureAirport,
		ArrivalAirport:   m.ArrivalAirport,
		DepartureDate:    m.DepartureDate,
		AdditionalNotes:  m.AdditionalNotes,
		Status:           entity.RequestStatus(m.Status),
		PointsAwarded:    m.PointsAwarded,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (r *PointRequestRepository) handleDatabaseError(operation string, err error, requestID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrRequestNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"request_id": requestID,
		"error":      err.Error(),
	})

	if r.errorClassifier.IsForeignKeyError(err) {
		return errs.ErrUserNotFound
	}
	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// Create saves a new pending request
func (r *PointRequestRepository) Create(ctx context.Context, request *entity.PointRequest) error {
	requestModel := model.PointRequest{
		ID:               request.ID,
		UserID:           request.UserID,
		FlightNumber:     request.FlightNumber,
		DepartureAirport: request.DepartureAirport,
		ArrivalAirport:   request.ArrivalAirport,
		DepartureDate:    request.DepartureDate,
		AdditionalNotes:  request.AdditionalNotes,
		Status:           string(request.Status),
		PointsAwarded:    request.PointsAwarded,
		CreatedAt:        request.CreatedAt,
		UpdatedAt:        request.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&requestModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating point request", result.Error, request.ID)
	}
	return nil
}

// GetByID retrieves a request by its ID
func (r *PointRequestRepository) GetByID(ctx context.Context, id string) (*entity.PointRequest, error) {
	var requestModel model.PointRequest
	result := r.db.WithContext(ctx).First(&requestModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting point request", result.Error, id)
	}
	return modelToRequestEntity(&requestModel), nil
}

// ListByUser returns the member's requests, most recent first
func (r *PointRequestRepository) ListByUser(ctx context.Context, userID string) ([]*entity.PointRequest, error) {
	var requestModels []model.PointRequest
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requestModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing point requests", result.Error, "")
	}

	requests := make([]*entity.PointRequest, 0, len(requestModels))
	for i := range requestModels {
		requests = append(requests, modelToRequestEntity(&requestModels[i]))
	}
	return requests, nil
}

// MarkResolved transitions the request out of pending. The row is read
// FOR UPDATE and the state machine is enforced by the entity; the UPDATE
// additionally compare-and-sets on status, so a resolution racing outside
// the lock still cannot apply twice.
func (r *PointRequestRepository) MarkResolved(ctx context.Context, id string, status entity.RequestStatus, pointsAwarded int) (*entity.PointRequest, error) {
	var requestModel model.PointRequest
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&requestModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking point request", result.Error, id)
	}

	request := modelToRequestEntity(&requestModel)

	var mutErr error
	switch status {
	case entity.StatusApproved:
		mutErr = request.Approve(pointsAwarded, r.timeProvider)
	case entity.StatusRejected:
		mutErr = request.Reject(r.timeProvider)
	default:
		return nil, errs.NewValidationError("status", "must be approved or rejected")
	}
	if mutErr != nil {
		if errs.IsConflictError(mutErr) {
			r.logger.Warn("Attempt to resolve a non-pending point request", map[string]any{
				"request_id": id,
				"status":     string(request.Status),
			})
		}
		return nil, mutErr
	}

	result = r.db.WithContext(ctx).Model(&model.PointRequest{}).
		Where("id = ? AND status = ?", id, string(entity.StatusPending)).
		Updates(map[string]any{
			"status":         string(request.Status),
			"points_awarded": request.PointsAwarded,
			"updated_at":     request.UpdatedAt,
		})
	if result.Error != nil {
		return nil, r.handleDatabaseError("resolving point request", result.Error, id)
	}
	if result.RowsAffected == 0 {
		// The row left pending between the read and the write
		existing, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, errs.NewRequestStateError(id, string(existing.Status))
	}

	return request, nil
}
