package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "alice", "a@x.com", "user", "secret", time.Hour, "finance-tracker")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "finance-tracker", claims.Issuer)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-1", "alice", "a@x.com", "user", "secret", time.Hour, "iss")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("user-1", "alice", "a@x.com", "user", "secret", -time.Minute, "iss")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret")
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestParseJWT_Malformed(t *testing.T) {
	_, err := ParseAndValidateJWT("not.a.jwt", "secret")
	assert.Error(t, err)
}
