package usecase

import (
	"context"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
)

// SubmitInput carries the fields of a request submission. All fields except
// AdditionalNotes are required.
type SubmitInput struct {
	FlightNumber     string
	DepartureAirport string
	ArrivalAirport   string
	DepartureDate    string
	AdditionalNotes  string
}

// Decision is the outcome of resolving a pending request
type Decision string

const (
	// DecisionApprove credits the awarded points to the member
	DecisionApprove Decision = "approve"
	// DecisionReject closes the request without any credit
	DecisionReject Decision = "reject"
)

// Balance is a read-model of a member's ledger position.
type Balance struct {
	UserID        string
	CurrentPoints int
	TotalEarned   int
	TotalUsed     int
	Tier          entity.Tier
}

// LedgerUseCase defines the ledger and request-workflow operations
type LedgerUseCase interface {
	// SubmitRequest creates a pending point request for the member
	SubmitRequest(ctx context.Context, userID string, in SubmitInput) (*entity.PointRequest, error)

	// ResolveRequest decides a pending request; approving credits the
	// member and records the history entry atomically
	ResolveRequest(ctx context.Context, requestID string, decision Decision, pointsToAward int) (*entity.PointRequest, error)

	// RedeemPoints spends points from the member's balance
	RedeemPoints(ctx context.Context, userID string, points int, description string) (*entity.User, error)

	// AwardBonus credits promotional points outside the request workflow
	AwardBonus(ctx context.Context, userID string, points int, description string) (*entity.User, error)

	// GetBalance returns the member's point counters and derived tier
	GetBalance(ctx context.Context, userID string) (*Balance, error)

	// GetRequests returns the member's point requests, most recent first
	GetRequests(ctx context.Context, userID string) ([]*entity.PointRequest, error)

	// GetRequestByID returns a single request regardless of owner
	GetRequestByID(ctx context.Context, requestID string) (*entity.PointRequest, error)

	// GetHistory returns the member's history entries, most recent first
	GetHistory(ctx context.Context, userID string) ([]*entity.PointHistoryEntry, error)
}
