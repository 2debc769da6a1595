package user

import (
	"context"
	"strings"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/usecase"
)

// Profile defaults applied when registration omits optional fields,
// matching the membership-desk intake form.
const (
	defaultDateOfBirth = "1990-01-01"
	defaultGender      = "prefer-not-to-say"
	defaultNationality = "other"
)

// validateRegisterInput checks required fields and basic shape
func validateRegisterInput(in usecase.RegisterInput) error {
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return errs.NewValidationError("email", "must be a valid email address")
	}
	if len(in.Password) < 6 {
		return errs.NewValidationError("password", "must be at least 6 characters")
	}
	if strings.TrimSpace(in.FirstName) == "" {
		return errs.NewValidationError("firstName", "is required")
	}
	if strings.TrimSpace(in.LastName) == "" {
		return errs.NewValidationError("lastName", "is required")
	}
	return nil
}

// Register creates a new member with a zero ledger. Creation is an explicit
// find-then-create: an existing email fails with ErrDuplicateEmail instead
// of silently updating the stored account. The membership ID is generated
// only on this first-time-creation branch.
func (u *UserUseCase) Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error) {
	if err := validateRegisterInput(in); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, errs.ErrDuplicateEmail
	}
	if !errs.IsNotFoundError(err) {
		return nil, err
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	member, err := entity.NewUser(u.ids.NewID(), email, hash, u.timeProvider)
	if err != nil {
		return nil, err
	}
	member.FirstName = strings.TrimSpace(in.FirstName)
	member.LastName = strings.TrimSpace(in.LastName)
	member.DateOfBirth = valueOrDefault(in.DateOfBirth, defaultDateOfBirth)
	member.Gender = valueOrDefault(in.Gender, defaultGender)
	member.Nationality = valueOrDefault(in.Nationality, defaultNationality)
	member.MembershipID = u.ids.NewMembershipID()

	if err := u.userRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	u.logger.Info("Member registered", map[string]any{
		"user_id":       member.ID,
		"membership_id": member.MembershipID,
	})
	return member, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
