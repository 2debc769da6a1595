package identity

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	gen := NewUUIDGenerator()

	first := gen.NewID()
	second := gen.NewID()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestNewMembershipID(t *testing.T) {
	gen := NewUUIDGenerator()

	t.Run("Format", func(t *testing.T) {
		id := gen.NewMembershipID()

		require.True(t, strings.HasPrefix(id, "SA-SILVER-"), id)
		suffix := strings.TrimPrefix(id, "SA-SILVER-")
		require.Len(t, suffix, membershipSuffixLength)
		for _, c := range suffix {
			assert.Contains(t, membershipAlphabet, string(c))
		}
	})

	t.Run("No confusable characters", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			suffix := strings.TrimPrefix(gen.NewMembershipID(), "SA-SILVER-")
			assert.NotContainsf(t, suffix, "0", "suffix %s", suffix)
			assert.NotContainsf(t, suffix, "O", "suffix %s", suffix)
			assert.NotContainsf(t, suffix, "1", "suffix %s", suffix)
			assert.NotContainsf(t, suffix, "I", "suffix %s", suffix)
		}
	})

	t.Run("Practically unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 200; i++ {
			id := gen.NewMembershipID()
			assert.False(t, seen[id], "duplicate membership ID %s", id)
			seen[id] = true
		}
	})
}
