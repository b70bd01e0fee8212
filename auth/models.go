package auth

import (
	"fmt"
	"time"

	"github.com/user/journal-go/apperror"
)

// Role is the closed set of user roles. It is validated at every write
// path rather than treated as a free-form string.
type Role string

const (
	// RoleAdmin may manage users and read every journal entry.
	RoleAdmin Role = "admin"
	// RoleUser is the default role for every registrant after the first.
	RoleUser Role = "user"
)

// ParseRole validates a role string against the recognized values.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", apperror.NewValidationError(fmt.Sprintf("Invalid role '%s'", s), nil)
	}
}

// User represents a registered account. The hashed password is never
// serialized into API responses.
type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
