package entity

import (
	"time"

	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	coreport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
)

// HistoryType classifies a balance-affecting event
type HistoryType string

const (
	// HistoryEarned records points credited through an approved request
	HistoryEarned HistoryType = "earned"
	// HistoryRedeemed records points spent by the member
	HistoryRedeemed HistoryType = "redeemed"
	// HistoryBonus records promotional points credited outside a request
	HistoryBonus HistoryType = "bonus"
)

// PointHistoryEntry is one immutable record of a balance change. Entries
// are append-only: for every member the sum of earned and bonus points
// minus redeemed points equals the current balance.
type PointHistoryEntry struct {
	ID          string
	UserID      string
	Type        HistoryType
	Points      int
	Description string
	CreatedAt   time.Time
}

// NewPointHistoryEntry creates an entry for a single balance change.
func NewPointHistoryEntry(id, userID string, entryType HistoryType, points int, description string, timeProvider coreport.TimeProvider) (*PointHistoryEntry, error) {
	if points <= 0 {
		return nil, errs.ErrInvalidPointAmount
	}
	switch entryType {
	case HistoryEarned, HistoryRedeemed, HistoryBonus:
	default:
		return nil, errs.NewValidationError("type", "unknown history entry type")
	}

	return &PointHistoryEntry{
		ID:          id,
		UserID:      userID,
		Type:        entryType,
		Points:      points,
		Description: description,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// Credits reports whether the entry increases the balance.
func (e *PointHistoryEntry) Credits() bool {
	return e.Type == HistoryEarned || e.Type == HistoryBonus
}
