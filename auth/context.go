package auth

import "context"

// contextKey is a private type so this package's context keys cannot
// collide with keys from other packages.
type contextKey string

const claimsContextKey contextKey = "auth_claims"

// NewContextWithClaims returns a child context carrying the decoded claims.
func NewContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts the claims stored by the Authenticate
// middleware. The bool is false when no claims are present.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}
