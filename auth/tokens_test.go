package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/journal-go/apperror"
	"github.com/user/journal-go/config"
)

func testIssuer(ttl time.Duration) *TokenIssuer {
	return NewTokenIssuer(config.AuthConfig{JWTSecret: "test-secret", TokenDuration: ttl})
}

func TestIssueAndVerify(t *testing.T) {
	issuer := testIssuer(time.Hour)
	user := &User{ID: 42, Username: "alice", Role: RoleAdmin}

	token, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.True(t, claims.IsAdmin())
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := testIssuer(-time.Minute)
	token, err := issuer.Issue(&User{ID: 7, Username: "bob", Role: RoleUser})
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := testIssuer(time.Hour)
	token, err := issuer.Issue(&User{ID: 7, Username: "bob", Role: RoleUser})
	require.NoError(t, err)

	other := NewTokenIssuer(config.AuthConfig{JWTSecret: "different-secret", TokenDuration: time.Hour})
	_, err = other.Verify(token)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestVerifyMalformedToken(t *testing.T) {
	issuer := testIssuer(time.Hour)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Verify(tokenString)
		require.Error(t, err)
		assert.True(t, apperror.IsAuthError(err))
	}
}
