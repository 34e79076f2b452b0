package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidateToken(t *testing.T) {
	jwtKey = []byte("test-secret")

	userID := uuid.New()
	token, err := CreateToken(userID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	jwtKey = []byte("test-secret")

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	jwtKey = []byte("test-secret")
	token, err := CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	jwtKey = []byte("other-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
