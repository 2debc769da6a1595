package auth

import "time"

// PasswordHasher hashes and verifies member passwords
type PasswordHasher interface {
	// Hash returns a one-way hash of the plaintext password
	Hash(password string) (string, error)
	// Compare reports whether the plaintext matches the stored hash
	Compare(hash, password string) error
}

// TokenService issues and verifies the signed tokens that carry a member's
// identity between requests
type TokenService interface {
	// Issue creates a signed token for the user, returning the token and
	// its expiry time
	Issue(userID string) (string, time.Time, error)
	// Verify validates a token and returns the user ID it carries
	Verify(token string) (string, error)
}
