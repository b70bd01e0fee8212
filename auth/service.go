// Package auth handles registration, login, password hashing, token
// issuing/verification, and the authentication/authorization middleware.
package auth

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/user/journal-go/apperror"
	"github.com/user/journal-go/validate"
)

// invalidCredentialsMessage is returned for both an unknown email and a
// wrong password, so a caller cannot enumerate registered addresses.
const invalidCredentialsMessage = "Invalid credentials"

// Service implements registration and login on top of the credential
// store and the token issuer.
type Service struct {
	repo   UserRepository
	issuer *TokenIssuer
}

// NewService creates an auth Service.
func NewService(repo UserRepository, issuer *TokenIssuer) *Service {
	return &Service{repo: repo, issuer: issuer}
}

// Register validates the payload, hashes the password, and stores the new
// user. The very first registrant becomes admin; the role designation
// happens atomically inside the insert.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	digest, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: digest,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Info().Int("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login authenticates by email and password and issues a bearer token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewAuthError(invalidCredentialsMessage, nil)
		}
		return nil, err
	}

	if !CheckPassword(req.Password, user.HashedPassword) {
		return nil, apperror.NewAuthError(invalidCredentialsMessage, nil)
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, apperror.NewInternalError("Failed to login", err)
	}

	user.HashedPassword = ""
	log.Info().Int("user_id", user.ID).Msg("user logged in")
	return &LoginResponse{Token: token, User: user}, nil
}
