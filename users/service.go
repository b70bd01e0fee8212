// Package users provides profile access and the admin-only user
// management surface: listing, role changes, and deletion.
package users

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/user/journal-go/apperror"
	"github.com/user/journal-go/auth"
	"github.com/user/journal-go/validate"
)

// Service implements user management on top of the repository.
type Service struct {
	repo Repository
}

// NewService creates a users Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Profile returns the user's own profile.
func (s *Service) Profile(ctx context.Context, userID int) (*auth.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// Stats returns the user's journal entry count.
func (s *Service) Stats(ctx context.Context, userID int) (*Stats, error) {
	count, err := s.repo.CountEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Stats{UserID: userID, EntryCount: count}, nil
}

// List returns every profile. Admin-only; the role gate sits in the
// middleware, not here.
func (s *Service) List(ctx context.Context) ([]*auth.User, error) {
	return s.repo.List(ctx)
}

// Get returns a profile by id.
func (s *Service) Get(ctx context.Context, id int) (*auth.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateRole validates the requested role against the closed set and
// applies it.
func (s *Service) UpdateRole(ctx context.Context, id int, req UpdateRoleRequest) (*auth.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	role, err := auth.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	log.Info().Int("user_id", id).Str("role", string(role)).Msg("user role updated")
	return updated, nil
}

// Delete removes a user. An account can never delete itself through this
// path, admin or not.
func (s *Service) Delete(ctx context.Context, requesterID, id int) (*DeletedUser, error) {
	if requesterID == id {
		return nil, apperror.NewSelfDeletionError("Cannot delete your own account")
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	log.Info().Int("user_id", id).Int("deleted_by", requesterID).Msg("user deleted")
	return deleted, nil
}
