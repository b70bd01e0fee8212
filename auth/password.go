package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/user/journal-go/apperror"
)

// HashPassword hashes a plaintext password with bcrypt (cost 10, random
// salt per call, so two hashes of the same input differ). An empty
// plaintext is rejected before touching the hasher.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", apperror.NewValidationError("Password must not be empty", nil)
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", apperror.NewInternalError("failed to hash password", err)
	}
	return string(digest), nil
}

// CheckPassword reports whether plain matches digest. A mismatch is not
// an error condition; it simply returns false.
func CheckPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
