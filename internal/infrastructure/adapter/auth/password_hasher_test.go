package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	// MinCost keeps the test fast
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("Hash and compare round trip", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret-pass")

		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-pass", hash)
		assert.NoError(t, hasher.Compare(hash, "s3cret-pass"))
	})

	t.Run("Wrong password fails comparison", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret-pass")

		require.NoError(t, err)
		assert.Error(t, hasher.Compare(hash, "wrong-pass"))
	})

	t.Run("Hashes are salted", func(t *testing.T) {
		first, err := hasher.Hash("same-password")
		require.NoError(t, err)
		second, err := hasher.Hash("same-password")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("Garbage hash fails comparison", func(t *testing.T) {
		assert.Error(t, hasher.Compare("not-a-bcrypt-hash", "whatever"))
	})

	t.Run("Out of range cost falls back to the default", func(t *testing.T) {
		fallback := NewBcryptHasher(100)

		hash, err := fallback.Hash("s3cret-pass")

		require.NoError(t, err)
		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}
