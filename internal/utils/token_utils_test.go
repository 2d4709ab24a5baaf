package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("identity-1", "session-1", "secret", time.Now().Add(time.Hour), "factory-ops")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "identity-1", claims.Subject)
	assert.Equal(t, "session-1", claims.ID)
	assert.Equal(t, "factory-ops", claims.Issuer)
}

func TestParseJWTRejectsWrongSecretAndExpiry(t *testing.T) {
	token, err := GenerateJWT("identity-1", "session-1", "secret", time.Now().Add(time.Hour), "factory-ops")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(token, "other")
	assert.Error(t, err)

	expired, err := GenerateJWT("identity-1", "session-1", "secret", time.Now().Add(-time.Minute), "factory-ops")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("secret2", hash))
}
