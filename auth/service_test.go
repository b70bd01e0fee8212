package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/user/journal-go/apperror"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *User) (*User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewService(repo, testIssuer(time.Hour))

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.Username == "alice" &&
			u.Email == "alice@example.com" &&
			u.HashedPassword != "" &&
			u.HashedPassword != "plaintext"
	})).Return(&User{ID: 1, Username: "alice", Email: "alice@example.com", Role: RoleAdmin}, nil)

	created, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "plaintext",
	})
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, created.Role)
	repo.AssertExpectations(t)
}

func TestRegisterValidatesInput(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewService(repo, testIssuer(time.Hour))

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing username", RegisterRequest{Email: "a@b.com", Password: "pw"}},
		{"missing email", RegisterRequest{Username: "a", Password: "pw"}},
		{"bad email", RegisterRequest{Username: "a", Email: "not-an-email", Password: "pw"}},
		{"missing password", RegisterRequest{Username: "a", Email: "a@b.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, apperror.IsValidationError(err))
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterPropagatesConflict(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewService(repo, testIssuer(time.Hour))

	repo.On("Create", mock.Anything, mock.Anything).
		Return(nil, apperror.NewConflictError("Email already exists", nil))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestLoginSuccess(t *testing.T) {
	digest, err := HashPassword("correct-password")
	require.NoError(t, err)

	repo := new(mockUserRepository)
	svc := NewService(repo, testIssuer(time.Hour))

	repo.On("GetByEmail", mock.Anything, "alice@example.com").
		Return(&User{ID: 1, Username: "alice", Email: "alice@example.com", HashedPassword: digest, Role: RoleUser}, nil)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.Username)
	// The digest never leaves the service.
	assert.Empty(t, resp.User.HashedPassword)
}

// Unknown email and wrong password must be indistinguishable to callers.
func TestLoginCredentialErrorsAreIdentical(t *testing.T) {
	digest, err := HashPassword("correct-password")
	require.NoError(t, err)

	repo := new(mockUserRepository)
	svc := NewService(repo, testIssuer(time.Hour))

	repo.On("GetByEmail", mock.Anything, "nobody@example.com").
		Return(nil, apperror.NewNotFoundError("User not found", nil))
	repo.On("GetByEmail", mock.Anything, "alice@example.com").
		Return(&User{ID: 1, Username: "alice", Email: "alice@example.com", HashedPassword: digest, Role: RoleUser}, nil)

	_, unknownEmailErr := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	_, wrongPasswordErr := svc.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)
	assert.True(t, apperror.IsAuthError(unknownEmailErr))
	assert.True(t, apperror.IsAuthError(wrongPasswordErr))

	unknownApp, _ := apperror.FromError(unknownEmailErr)
	wrongApp, _ := apperror.FromError(wrongPasswordErr)
	assert.Equal(t, unknownApp.Message, wrongApp.Message)
	assert.Equal(t, unknownApp.StatusCode(), wrongApp.StatusCode())
}

func TestLoginValidatesInput(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewService(repo, testIssuer(time.Hour))

	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@b.com"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))
	repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}
