package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	signed, err := GenerateJWT(42, "athlete", "secret", 5)
	require.NoError(t, err)

	claims, err := ValidateJWT(signed, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "athlete", claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateJWT_Rejects(t *testing.T) {
	signed, err := GenerateJWT(7, "venue", "secret", 5)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, "other-secret")
	assert.EqualError(t, err, "token signature is invalid")

	expired, err := GenerateJWT(7, "venue", "secret", -1)
	require.NoError(t, err)
	_, err = ValidateJWT(expired, "secret")
	assert.EqualError(t, err, "token has expired")

	_, err = ValidateJWT("", "secret")
	assert.Error(t, err)

	zeroUser, err := GenerateJWT(0, "athlete", "secret", 5)
	require.NoError(t, err)
	_, err = ValidateJWT(zeroUser, "secret")
	assert.Error(t, err)
}
