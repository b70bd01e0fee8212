package journal

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/user/journal-go/apperror"
	"github.com/user/journal-go/auth"
	"github.com/user/journal-go/validate"
)

// Service implements journal business rules. Regular users may only touch
// their own entries; admins may read, update, and delete anyone's.
type Service struct {
	repo Repository
}

// NewService creates a journal Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// canAccess reports whether the caller may act on the entry.
func canAccess(claims *auth.Claims, entry *Entry) bool {
	return entry.UserID == claims.UserID || claims.IsAdmin()
}

// ListMine returns the caller's own entries, newest first.
func (s *Service) ListMine(ctx context.Context, claims *auth.Claims) ([]*Entry, error) {
	return s.repo.ListByOwner(ctx, claims.UserID)
}

// ListAll returns every entry in the system. The admin gate lives in the
// routing layer.
func (s *Service) ListAll(ctx context.Context) ([]*Entry, error) {
	return s.repo.ListAll(ctx)
}

// Get returns a single entry if the caller owns it or is an admin. A
// missing entry reports not-found before any access decision is made.
func (s *Service) Get(ctx context.Context, claims *auth.Claims, id int) (*Entry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccess(claims, entry) {
		return nil, apperror.NewForbiddenError("Access denied", nil)
	}
	return entry, nil
}

// Create stores a new entry owned by the caller.
func (s *Service) Create(ctx context.Context, claims *auth.Claims, req CreateEntryRequest) (*Entry, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	entry := &Entry{
		UserID:  claims.UserID,
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
		Tags:    req.Tags,
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}

	log.Info().Int("entry_id", created.ID).Int("user_id", claims.UserID).Msg("journal entry created")
	return created, nil
}

// Update applies a partial update after the ownership check. Unset fields
// keep their stored values.
func (s *Service) Update(ctx context.Context, claims *auth.Claims, id int, req UpdateEntryRequest) (*Entry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccess(claims, entry) {
		return nil, apperror.NewForbiddenError("Access denied", nil)
	}

	return s.repo.Update(ctx, id, req)
}

// Delete removes an entry after the ownership check and returns its
// minimal projection.
func (s *Service) Delete(ctx context.Context, claims *auth.Claims, id int) (*DeletedEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canAccess(claims, entry) {
		return nil, apperror.NewForbiddenError("Access denied", nil)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Info().Int("entry_id", id).Int("user_id", claims.UserID).Msg("journal entry deleted")
	return deleted, nil
}
