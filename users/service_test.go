package users

import (
	"context"
	"net/http"
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

func (m *mockRepository) List(ctx context.Context) ([]*auth.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*auth.User), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id int) (*auth.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *mockRepository) UpdateRole(ctx context.Context, id int, role auth.Role) (*auth.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id int) (*DeletedUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DeletedUser), args.Error(1)
}

func (m *mockRepository) CountEntries(ctx context.Context, userID int) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func TestDeleteRejectsSelfDeletion(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.Delete(context.Background(), 5, 5)
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
	assert.Equal(t, "Cannot delete your own account", appErr.Message)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteOtherUser(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("Delete", mock.Anything, 7).
		Return(&DeletedUser{ID: 7, Username: "bob", Email: "bob@example.com"}, nil)

	deleted, err := svc.Delete(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, deleted.ID)
	assert.Equal(t, "bob", deleted.Username)
	repo.AssertExpectations(t)
}

func TestDeleteMissingUser(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("Delete", mock.Anything, 99).
		Return(nil, apperror.NewNotFoundError("User not found", nil))

	_, err := svc.Delete(context.Background(), 1, 99)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	_, err := svc.UpdateRole(context.Background(), 2, UpdateRoleRequest{Role: "superuser"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
	repo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateRolePromotesUser(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("UpdateRole", mock.Anything, 2, auth.RoleAdmin).
		Return(&auth.User{ID: 2, Username: "bob", Role: auth.RoleAdmin}, nil)

	updated, err := svc.UpdateRole(context.Background(), 2, UpdateRoleRequest{Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, updated.Role)
	repo.AssertExpectations(t)
}

func TestStats(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("CountEntries", mock.Anything, 3).Return(12, nil)

	stats, err := svc.Stats(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.UserID)
	assert.Equal(t, 12, stats.EntryCount)
}
