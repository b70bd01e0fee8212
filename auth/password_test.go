package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/journal-go/apperror"
)

func TestHashPassword(t *testing.T) {
	digest, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "s3cret-password", digest)
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	first, err := HashPassword("same-input")
	require.NoError(t, err)
	second, err := HashPassword("same-input")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := HashPassword("")
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("correct-horse")
	require.NoError(t, err)

	assert.True(t, CheckPassword("correct-horse", digest))
	assert.False(t, CheckPassword("wrong-horse", digest))
	assert.False(t, CheckPassword("correct-horse", "not-a-bcrypt-digest"))
}
