package ledger

import (
	"context"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/usecase"
)

// SubmitRequest creates a pending point request for the member. Submission
// never touches the balance or the history; those only move when the
// request is approved.
func (s *Service) SubmitRequest(ctx context.Context, userID string, in usecase.SubmitInput) (*entity.PointRequest, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if err := validateSubmitInput(in); err != nil {
		s.logger.Warn("Rejected malformed point request submission", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	// The submitter must resolve to a real member
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	request := entity.NewPointRequest(s.ids.NewID(), userID, s.timeProvider)
	request.FlightNumber = in.FlightNumber
	request.DepartureAirport = in.DepartureAirport
	request.ArrivalAirport = in.ArrivalAirport
	request.DepartureDate = in.DepartureDate
	request.AdditionalNotes = in.AdditionalNotes

	if err := s.requests.Create(ctx, request); err != nil {
		s.logger.Error("Failed to create point request", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.metrics.RequestSubmitted()
	s.logger.Info("Point request submitted", map[string]any{
		"request_id":    request.ID,
		"user_id":       userID,
		"flight_number": request.FlightNumber,
		"route":         request.DepartureAirport + "-" + request.ArrivalAirport,
	})
	return request, nil
}
