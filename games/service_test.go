package games

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/user/journal-go/apperror"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context) ([]*Game, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Game), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id int) (*Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Game), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, game *Game) (*Game, error) {
	args := m.Called(ctx, game)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Game), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, id int, title, genre, developer *string, releaseDate *time.Time) (*Game, error) {
	args := m.Called(ctx, id, title, genre, developer, releaseDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Game), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id int) (*DeletedGame, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DeletedGame), args.Error(1)
}

func TestCreateGame(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	wantDate := time.Date(2017, 2, 24, 0, 0, 0, 0, time.UTC)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(g *Game) bool {
		return g.Title == "Hollow Knight" && g.ReleaseDate.Equal(wantDate)
	})).Return(&Game{ID: 1, Title: "Hollow Knight", Genre: "Metroidvania", ReleaseDate: wantDate, Developer: "Team Cherry"}, nil)

	game, err := svc.Create(context.Background(), CreateGameRequest{
		Title:       "Hollow Knight",
		Genre:       "Metroidvania",
		ReleaseDate: "2017-02-24",
		Developer:   "Team Cherry",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, game.ID)
	repo.AssertExpectations(t)
}

func TestCreateGameValidatesFields(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateGameRequest{Title: "No Genre"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateGameRejectsBadDate(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateGameRequest{
		Title:       "Bad Date",
		Genre:       "Puzzle",
		ReleaseDate: "24/02/2017",
		Developer:   "Someone",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateGamePartial(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	genre := "Action"
	repo.On("Update", mock.Anything, 4, (*string)(nil), &genre, (*string)(nil), (*time.Time)(nil)).
		Return(&Game{ID: 4, Title: "Kept Title", Genre: "Action"}, nil)

	game, err := svc.Update(context.Background(), 4, UpdateGameRequest{Genre: &genre})
	require.NoError(t, err)
	assert.Equal(t, "Kept Title", game.Title)
	assert.Equal(t, "Action", game.Genre)
	repo.AssertExpectations(t)
}

func TestUpdateGameRejectsBadDate(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	badDate := "next tuesday"
	_, err := svc.Update(context.Background(), 4, UpdateGameRequest{ReleaseDate: &badDate})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteGame(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("Delete", mock.Anything, 4).Return(&DeletedGame{ID: 4, Title: "Old Game"}, nil)

	deleted, err := svc.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Old Game", deleted.Title)
}

func TestDeleteMissingGame(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("Delete", mock.Anything, 99).
		Return(nil, apperror.NewNotFoundError("Game not found", nil))

	_, err := svc.Delete(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
