package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT("user-123", "a@x.com", "super-secret", 30)
	require.NoError(t, err)

	userID, email, err := ParseJWT(tok, "super-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, "a@x.com", email)
}

func TestParseJWT_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT("u1", "a@x.com", "secret", -1)
	require.NoError(t, err)

	_, _, err = ParseJWT(tok, "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT("u2", "b@x.com", "right-secret", 30)
	require.NoError(t, err)

	_, _, err = ParseJWT(tok, "wrong-secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseJWT_Malformed(t *testing.T) {
	t.Parallel()

	_, _, err := ParseJWT("not.a.jwt", "k")
	require.Error(t, err)
}
