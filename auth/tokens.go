package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/journal-go/apperror"
	"github.com/user/journal-go/config"
)

// Claims is the JWT payload: the authenticated identity plus the
// registered claims (expiry, issued-at).
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the claims carry the admin role.
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// TokenIssuer signs and verifies bearer tokens. The signing secret and
// token lifetime are injected at construction time so tests can supply
// isolated instances.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer from the auth configuration.
func NewTokenIssuer(cfg config.AuthConfig) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenDuration,
	}
}

// Issue creates a signed HS256 token for the user, expiring after the
// configured lifetime.
func (t *TokenIssuer) Issue(user *User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   strconv.Itoa(user.ID),
			Issuer:    "journal-go",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. Bad signature, elapsed
// expiry, and structural garbage all fail the same way: an AuthError the
// middleware maps to 401.
func (t *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, apperror.NewAuthError("Invalid token", err)
	}
	if !token.Valid {
		return nil, apperror.NewAuthError("Invalid token", nil)
	}
	if claims.UserID == 0 {
		return nil, apperror.NewAuthError("Invalid token", nil)
	}
	return claims, nil
}
