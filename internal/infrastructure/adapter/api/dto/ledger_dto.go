package dto

import (
	"time"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/usecase"
)

// CreatePointRequestRequest represents a point request submission
type CreatePointRequestRequest struct {
	FlightNumber     string `json:"flightNumber" binding:"required"`
	DepartureAirport string `json:"departureAirport" binding:"required"`
	ArrivalAirport   string `json:"arrivalAirport" binding:"required"`
	DepartureDate    string `json:"departureDate" binding:"required"`
	AdditionalNotes  string `json:"additionalNotes"`
}

// ResolvePointRequestRequest represents a decision on a pending request
type ResolvePointRequestRequest struct {
	Decision      string `json:"decision" binding:"required,oneof=approve reject"`
	PointsToAward int    `json:"pointsToAward"`
}

// PointRequestResponse represents a point request in API responses
type PointRequestResponse struct {
	ID               string `json:"id"`
	UserID           string `json:"userId"`
	FlightNumber     string `json:"flightNumber"`
	DepartureAirport string `json:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport"`
	DepartureDate    string `json:"departureDate"`
	AdditionalNotes  string `json:"additionalNotes,omitempty"`
	Status           string `json:"status"`
	PointsAwarded    int    `json:"pointsAwarded"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// NewPointRequestResponse maps a request entity to its API representation
func NewPointRequestResponse(request *entity.PointRequest) PointRequestResponse {
	return PointRequestResponse{
		ID:               request.ID,
		UserID:           request.UserID,
		FlightNumber:     request.FlightNumber,
		DepartureAirport: request.DepartureAirport,
		ArrivalAirport:   request.ArrivalAirport,
		DepartureDate:    request.DepartureDate,
		AdditionalNotes:  request.AdditionalNotes,
		Status:           string(request.Status),
		PointsAwarded:    request.PointsAwarded,
		CreatedAt:        request.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        request.UpdatedAt.Format(time.RFC3339),
	}
}

// RedeemRequest represents a point redemption submission
type RedeemRequest struct {
	Points      int    `json:"points" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// BonusRequest represents a promotional credit submission
type BonusRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Points      int    `json:"points" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// BalanceResponse represents a member's ledger position
type BalanceResponse struct {
	UserID           string  `json:"userId"`
	CurrentPoints    int     `json:"currentPoints"`
	TotalEarned      int     `json:"totalEarned"`
	TotalUsed        int     `json:"totalUsed"`
	MembershipTier   string  `json:"membershipTier"`
	PointsToNextTier int     `json:"pointsToNextTier"`
	TierProgress     float64 `json:"tierProgress"`
}

// NewBalanceResponse maps a balance read-model to its API representation
func NewBalanceResponse(balance *usecase.Balance) BalanceResponse {
	return BalanceResponse{
		UserID:           balance.UserID,
		CurrentPoints:    balance.CurrentPoints,
		TotalEarned:      balance.TotalEarned,
		TotalUsed:        balance.TotalUsed,
		MembershipTier:   string(balance.Tier),
		PointsToNextTier: entity.PointsToNextTier(balance.CurrentPoints),
		TierProgress:     entity.TierProgressPercent(balance.CurrentPoints),
	}
}

// HistoryEntryResponse represents one history entry in API responses
type HistoryEntryResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Type        string `json:"type"`
	Points      int    `json:"points"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

// NewHistoryEntryResponse maps a history entity to its API representation
func NewHistoryEntryResponse(entry *entity.PointHistoryEntry) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:          entry.ID,
		UserID:      entry.UserID,
		Type:        string(entry.Type),
		Points:      entry.Points,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
	}
}
