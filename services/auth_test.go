package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqarpress/models"
)

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken(17, models.RoleAdmin, "test-secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(17), userID)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, models.RoleAuthor, "secret-a")
	require.NoError(t, err)

	_, _, err = ParseToken(token, "secret-b")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	_, _, err := ParseToken("not.a.token", "secret")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}
