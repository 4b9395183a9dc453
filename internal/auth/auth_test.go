// internal/auth/auth_test.go
package auth_test

import (
	"testing"
	"time"

	"github.com/bitloft/orgkit/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	hash, err := hasher.Hash("correct_horse")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	t.Run("verifies the right password", func(t *testing.T) {
		ok, err := hasher.Verify("correct_horse", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects the wrong password", func(t *testing.T) {
		ok, err := hasher.Verify("battery_staple", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("rejects a mangled hash", func(t *testing.T) {
		_, err := hasher.Verify("correct_horse", "not-a-hash")
		assert.Error(t, err)
	})

	t.Run("same password hashes differently per salt", func(t *testing.T) {
		other, err := hasher.Hash("correct_horse")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})
}

func TestTokenManager(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)

	token, err := tm.Generate("u1", "ada@example.com")
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		claims, err := tm.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.Equal(t, "ada@example.com", claims.Email)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := auth.NewTokenManager("other_secret", time.Hour)
		_, err := other.Validate(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := auth.NewTokenManager("test_secret", -time.Minute)
		tok, err := expired.Generate("u1", "ada@example.com")
		require.NoError(t, err)

		_, err = tm.Validate(tok)
		assert.Error(t, err)
	})
}
