package security_test

import (
	"testing"
	"time"

	"github.com/Amrsono/The-Shop/internal/security"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestParseToken(t *testing.T) {
	t.Run("Round trip preserves identity", func(t *testing.T) {
		token, err := security.GenerateToken(testSecret, "user-1", "jane@example.com", "user", time.Hour)
		assert.NoError(t, err)

		claims, err := security.ParseToken(testSecret, token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "jane@example.com", claims.Email)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("Wrong secret is rejected", func(t *testing.T) {
		token, err := security.GenerateToken(testSecret, "user-1", "jane@example.com", "user", time.Hour)
		assert.NoError(t, err)

		_, err = security.ParseToken("other-secret", token)
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		token, err := security.GenerateToken(testSecret, "user-1", "jane@example.com", "user", -time.Minute)
		assert.NoError(t, err)

		_, err = security.ParseToken(testSecret, token)
		assert.ErrorIs(t, err, security.ErrExpiredToken)
	})

	t.Run("Garbage is rejected", func(t *testing.T) {
		_, err := security.ParseToken(testSecret, "not-a-token")
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})
}
