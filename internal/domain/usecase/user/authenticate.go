package user

import (
	"context"
	"strings"

	"github.com/skyair-rewards/loyalty-engine/internal/domain/entity"
	errs "github.com/skyair-rewards/loyalty-engine/internal/domain/error"
)

// Authenticate verifies an email/password pair and returns the member.
// Unknown email and wrong password produce the same error so the response
// does not reveal which accounts exist.
func (u *UserUseCase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	member, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := u.hasher.Compare(member.PasswordHash, password); err != nil {
		u.logger.Warn("Failed login attempt", map[string]any{
			"user_id": member.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	return member, nil
}
