package journal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/user/journal-go/apperror"
	"github.com/user/journal-go/auth"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) ListByOwner(ctx context.Context, userID int) ([]*Entry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Entry), args.Error(1)
}

func (m *mockRepository) ListAll(ctx context.Context) ([]*Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Entry), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id int) (*Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Entry), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, entry *Entry) (*Entry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Entry), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, id int, req UpdateEntryRequest) (*Entry, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Entry), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id int) (*DeletedEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DeletedEntry), args.Error(1)
}

func ownerClaims() *auth.Claims {
	return &auth.Claims{UserID: 1, Username: "alice", Role: auth.RoleUser}
}

func strangerClaims() *auth.Claims {
	return &auth.Claims{UserID: 2, Username: "bob", Role: auth.RoleUser}
}

func adminClaims() *auth.Claims {
	return &auth.Claims{UserID: 3, Username: "root", Role: auth.RoleAdmin}
}

func TestGetOwnEntry(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, 10).Return(&Entry{ID: 10, UserID: 1, Title: "mine"}, nil)

	entry, err := svc.Get(context.Background(), ownerClaims(), 10)
	require.NoError(t, err)
	assert.Equal(t, "mine", entry.Title)
}

func TestGetForeignEntryForbidden(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, 10).Return(&Entry{ID: 10, UserID: 1, Title: "mine"}, nil)

	_, err := svc.Get(context.Background(), strangerClaims(), 10)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
}

func TestGetForeignEntryAllowedForAdmin(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, 10).Return(&Entry{ID: 10, UserID: 1, Title: "mine"}, nil)

	entry, err := svc.Get(context.Background(), adminClaims(), 10)
	require.NoError(t, err)
	assert.Equal(t, 10, entry.ID)
}

// A missing entry reports 404 before any ownership decision.
func TestGetMissingEntry(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, 99).
		Return(nil, apperror.NewNotFoundError("Journal entry not found", nil))

	_, err := svc.Get(context.Background(), strangerClaims(), 99)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreateValidatesInput(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), ownerClaims(), CreateEntryRequest{Title: "no content"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSetsOwner(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *Entry) bool {
		return e.UserID == 1 && e.Title == "day one" && e.Content == "it begins"
	})).Return(&Entry{ID: 5, UserID: 1, Title: "day one", Content: "it begins"}, nil)

	entry, err := svc.Create(context.Background(), ownerClaims(), CreateEntryRequest{
		Title:   "day one",
		Content: "it begins",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, entry.ID)
	repo.AssertExpectations(t)
}

func TestUpdateForeignEntryForbidden(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, 10).Return(&Entry{ID: 10, UserID: 1}, nil)

	title := "hijacked"
	_, err := svc.Update(context.Background(), strangerClaims(), 10, UpdateEntryRequest{Title: &title})
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOwnEntry(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	title := "revised"
	req := UpdateEntryRequest{Title: &title}

	repo.On("GetByID", mock.Anything, 10).Return(&Entry{ID: 10, UserID: 1, Title: "original", Content: "body"}, nil)
	repo.On("Update", mock.Anything, 10, req).
		Return(&Entry{ID: 10, UserID: 1, Title: "revised", Content: "body"}, nil)

	entry, err := svc.Update(context.Background(), ownerClaims(), 10, req)
	require.NoError(t, err)
	assert.Equal(t, "revised", entry.Title)
	// Fields left unset keep their stored values.
	assert.Equal(t, "body", entry.Content)
}

func TestDeleteForeignEntryForbidden(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, 10).Return(&Entry{ID: 10, UserID: 1}, nil)

	_, err := svc.Delete(context.Background(), strangerClaims(), 10)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteOwnEntry(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, 10).Return(&Entry{ID: 10, UserID: 1, Title: "gone"}, nil)
	repo.On("Delete", mock.Anything, 10).Return(&DeletedEntry{ID: 10, Title: "gone"}, nil)

	deleted, err := svc.Delete(context.Background(), ownerClaims(), 10)
	require.NoError(t, err)
	assert.Equal(t, "gone", deleted.Title)
}

func TestDeleteForeignEntryAllowedForAdmin(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, 10).Return(&Entry{ID: 10, UserID: 1, Title: "gone"}, nil)
	repo.On("Delete", mock.Anything, 10).Return(&DeletedEntry{ID: 10, Title: "gone"}, nil)

	deleted, err := svc.Delete(context.Background(), adminClaims(), 10)
	require.NoError(t, err)
	assert.Equal(t, 10, deleted.ID)
}
