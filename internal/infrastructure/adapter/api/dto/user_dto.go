package dto

import (
	"time"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
)

// UserResponse represents a member in API responses. The membership tier
// and progress figures are derived from the balance, never stored.
type UserResponse struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	DateOfBirth      string  `json:"dateOfBirth,omitempty"`
	Gender           string  `json:"gender,omitempty"`
	Nationality      string  `json:"nationality,omitempty"`
	Phone            string  `json:"phone,omitempty"`
	Address          string  `json:"address,omitempty"`
	MembershipID     string  `json:"membershipId"`
	MembershipTier   string  `json:"membershipTier"`
	CurrentPoints    int     `json:"currentPoints"`
	TotalEarned      int     `json:"totalEarned"`
	TotalUsed        int     `json:"totalUsed"`
	PointsToNextTier int     `json:"pointsToNextTier"`
	TierProgress     float64 `json:"tierProgress"`
	CreatedAt        string  `json:"createdAt"`
}

// NewUserResponse maps a member entity to its API representation
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		DateOfBirth:      user.DateOfBirth,
		Gender:           user.Gender,
		Nationality:      user.Nationality,
		Phone:            user.Phone,
		Address:          user.Address,
		MembershipID:     user.MembershipID,
		MembershipTier:   string(user.Tier()),
		CurrentPoints:    user.CurrentPoints,
		TotalEarned:      user.TotalEarned,
		TotalUsed:        user.TotalUsed,
		PointsToNextTier: entity.PointsToNextTier(user.CurrentPoints),
		TierProgress:     entity.TierProgressPercent(user.CurrentPoints),
		CreatedAt:        user.CreatedAt.Format(time.RFC3339),
	}
}

// UpdateProfileRequest carries a partial profile update; absent fields
// are left unchanged
type UpdateProfileRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	DateOfBirth *string `json:"dateOfBirth"`
	Gender      *string `json:"gender"`
	Nationality *string `json:"nationality"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}
