package identity

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
)

// membershipAlphabet excludes easily-confused characters (0/O, 1/I)
const membershipAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const membershipSuffixLength = 6

// UUIDGenerator implements the IDGenerator port with random UUIDs for
// record IDs and a short readable code for membership numbers.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator
func NewUUIDGenerator() core.IDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a random UUID string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// NewMembershipID returns a membership number like "SA-SILVER-X4K2P9".
// New members always start in the Silver tier.
func (g *UUIDGenerator) NewMembershipID() string {
	suffix := make([]byte, membershipSuffixLength)
	max := big.NewInt(int64(len(membershipAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic("failed to read random bytes: " + err.Error())
		}
		suffix[i] = membershipAlphabet[n.Int64()]
	}
	return fmt.Sprintf("SA-SILVER-%s", suffix)
}
