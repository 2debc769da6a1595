package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	authport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/auth"
	coreport "github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
)

// ErrInvalidToken is returned when a token fails signature or claim checks
var ErrInvalidToken = errors.New("invalid or expired token")

const tokenIssuer = "skyair-loyalty"

// JWTTokenService implements the TokenService port with HS256-signed JWTs
type JWTTokenService struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTTokenService creates a token service. The secret must be non-empty;
// token lifetime is controlled by ttl.
func NewJWTTokenService(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) (authport.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokenService{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// Issue creates a signed token carrying the user ID as subject
func (s *JWTTokenService) Issue(userID string) (string, time.Time, error) {
	now := s.timeProvider.Now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify validates the token and returns the user ID it carries
func (s *JWTTokenService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
