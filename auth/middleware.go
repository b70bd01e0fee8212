package auth

import (
	"net/http"
	"strings"

	"github.com/user/journal-go/apperror"
	"github.com/user/journal-go/respond"
)

// Authenticate requires a valid "Authorization: Bearer <token>" header.
// A missing header is reported as 403 (no credential); a malformed,
// expired, or badly signed token as 401 (invalid credential). On success
// the decoded claims are attached to the request context.
func Authenticate(issuer *TokenIssuer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respond.Error(w, r, apperror.NewNoCredentialError("Access denied, no token provided", nil))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				respond.Error(w, r, apperror.NewAuthError("Authorization header format must be Bearer {token}", nil))
				return
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				respond.Error(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContextWithClaims(r.Context(), claims)))
		})
	}
}

// RequireAdmin gates a route group to admin claims. It must run after
// Authenticate; authentication is always checked before authorization.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			respond.Error(w, r, apperror.NewNoCredentialError("Access denied, no token provided", nil))
			return
		}
		if !claims.IsAdmin() {
			respond.Error(w, r, apperror.NewForbiddenError("Admin access required", nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
