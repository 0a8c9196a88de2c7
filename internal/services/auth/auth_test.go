package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	customjwt "github.com/magabrotheeeer/feedback-hub/internal/lib/jwt"
	"github.com/magabrotheeeer/feedback-hub/internal/lib/password"
	"github.com/magabrotheeeer/feedback-hub/internal/models"
	services "github.com/magabrotheeeer/feedback-hub/internal/services/auth"
	"github.com/magabrotheeeer/feedback-hub/internal/storage"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newJWTMaker() customjwt.Maker {
	return customjwt.NewJWTMaker("test-secret", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		password   string
		setupMocks func(r *UserRepoMock)
		wantErr    error
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pw123",
			setupMocks: func(r *UserRepoMock) {
				r.On("RegisterUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Username == "alice" &&
						user.UID != "" &&
						user.PasswordHash != "" &&
						user.PasswordHash != "pw123"
				})).Return("assigned-uid", nil).Once()
			},
		},
		{
			name:     "duplicate username",
			username: "alice",
			password: "pw123",
			setupMocks: func(r *UserRepoMock) {
				r.On("RegisterUser", mock.Anything, mock.Anything).
					Return("", storage.ErrAlreadyExists).Once()
			},
			wantErr: services.ErrUsernameTaken,
		},
		{
			name:     "repository error",
			username: "alice",
			password: "pw123",
			setupMocks: func(r *UserRepoMock) {
				r.On("RegisterUser", mock.Anything, mock.Anything).
					Return("", errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			svc := services.NewAuthService(repo, newJWTMaker())

			tt.setupMocks(repo)

			got, err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "assigned-uid", got)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	rawPassword := "correctpassword"
	hash, err := password.GetHash(rawPassword)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	storedUser := &models.User{
		UID:          "uid-alice",
		Username:     "alice",
		PasswordHash: hash,
	}

	tests := []struct {
		name       string
		username   string
		password   string
		setupMocks func(r *UserRepoMock)
		wantUID    string
		wantErr    error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: rawPassword,
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByUsername", mock.Anything, "alice").
					Return(storedUser, nil).Once()
			},
			wantUID: "uid-alice",
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrongpassword",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByUsername", mock.Anything, "alice").
					Return(storedUser, nil).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "unknown username maps to same error",
			username: "nobody",
			password: rawPassword,
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByUsername", mock.Anything, "nobody").
					Return(nil, storage.ErrNotFound).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			svc := services.NewAuthService(repo, newJWTMaker())

			tt.setupMocks(repo)

			uid, token, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantUID, uid)
				assert.NotEmpty(t, token)

				user, err := svc.ValidateToken(context.Background(), token)
				assert.NoError(t, err)
				assert.Equal(t, "alice", user.Username)
				assert.Equal(t, "uid-alice", user.UID)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	svc := services.NewAuthService(new(UserRepoMock), newJWTMaker())

	_, err := svc.ValidateToken(context.Background(), "garbage")
	assert.Error(t, err)
}
