package games

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/user/journal-go/validate"
)

// Service implements catalog business rules. Reads are open to everyone;
// whether writes require authentication is decided by the routing layer.
type Service struct {
	repo Repository
}

// NewService creates a games Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every game in the catalog.
func (s *Service) List(ctx context.Context) ([]*Game, error) {
	return s.repo.List(ctx)
}

// Get returns a single game.
func (s *Service) Get(ctx context.Context, id int) (*Game, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates and stores a new game.
func (s *Service) Create(ctx context.Context, req CreateGameRequest) (*Game, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	releaseDate, err := req.ParseReleaseDate()
	if err != nil {
		return nil, err
	}

	game := &Game{
		Title:       req.Title,
		Genre:       req.Genre,
		ReleaseDate: releaseDate,
		Developer:   req.Developer,
	}

	created, err := s.repo.Create(ctx, game)
	if err != nil {
		return nil, err
	}

	log.Info().Int("game_id", created.ID).Str("title", created.Title).Msg("game created")
	return created, nil
}

// Update applies a partial update. Unset fields keep their stored values.
func (s *Service) Update(ctx context.Context, id int, req UpdateGameRequest) (*Game, error) {
	releaseDate, err := req.ParseReleaseDate()
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, req.Title, req.Genre, req.Developer, releaseDate)
}

// Delete removes a game and returns its minimal projection.
func (s *Service) Delete(ctx context.Context, id int) (*DeletedGame, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	log.Info().Int("game_id", id).Msg("game deleted")
	return deleted, nil
}
