package entity

import (
	"fmt"
	"time"

	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	coreport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
)

// RequestStatus is the lifecycle state of a point request
type RequestStatus string

const (
	// StatusPending is the initial state of every request
	StatusPending RequestStatus = "pending"
	// StatusApproved is terminal; the award has been credited
	StatusApproved RequestStatus = "approved"
	// StatusRejected is terminal; no points were credited
	StatusRejected RequestStatus = "rejected"
)

// PointRequest is a member's claim for points tied to a flight. Once a
// request leaves pending it never transitions again.
type PointRequest struct {
	ID               string
	UserID           string
	FlightNumber     string
	DepartureAirport string
	ArrivalAirport   string
	DepartureDate    string // YYYY-MM-DD; past and future flights are both accepted
	AdditionalNotes  string
	Status           RequestStatus
	PointsAwarded    int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewPointRequest creates a pending request with no award.
func NewPointRequest(id, userID string, timeProvider coreport.TimeProvider) *PointRequest {
	now := timeProvider.Now()
	return &PointRequest{
		ID:        id,
		UserID:    userID,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsResolved reports whether the request is in a terminal state.
func (r *PointRequest) IsResolved() bool {
	return r.Status != StatusPending
}

// Approve moves the request to approved with the given award.
// Resolving an already-resolved request is a state-machine violation.
func (r *PointRequest) Approve(points int, timeProvider coreport.TimeProvider) error {
	if r.IsResolved() {
		return errs.NewRequestStateError(r.ID, string(r.Status))
	}
	if points <= 0 {
		return errs.ErrInvalidPointAmount
	}
	r.Status = StatusApproved
	r.PointsAwarded = points
	r.UpdatedAt = timeProvider.Now()
	return nil
}

// Reject moves the request to rejected. The award stays zero.
func (r *PointRequest) Reject(timeProvider coreport.TimeProvider) error {
	if r.IsResolved() {
		return errs.NewRequestStateError(r.ID, string(r.Status))
	}
	r.Status = StatusRejected
	r.UpdatedAt = timeProvider.Now()
	return nil
}

// RouteDescription renders the flight route for history entries,
// e.g. "Flight SA1234 (JFK → LHR)".
func (r *PointRequest) RouteDescription() string {
	return fmt.Sprintf("Flight %s (%s → %s)", r.FlightNumber, r.DepartureAirport, r.ArrivalAirport)
}
