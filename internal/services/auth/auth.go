// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/feedback-hub/internal/lib/jwt"
	"github.com/magabrotheeeer/feedback-hub/internal/lib/password"
	"github.com/magabrotheeeer/feedback-hub/internal/models"
	"github.com/magabrotheeeer/feedback-hub/internal/storage"
)

// Ошибки бизнес-уровня аутентификации.
var (
	// ErrUsernameTaken возвращается при попытке занять существующий username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials возвращается и для неизвестного username,
	// и для неверного пароля: ответ не раскрывает, что именно не совпало.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService отвечает за регистрацию и авторизацию пользователей.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя: пароль хэшируется до записи,
// в открытом виде он нигде не сохраняется и не логируется.
func (s *AuthService) Register(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "services.auth.Register"
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		UID:          uuid.NewString(),
		Username:     username,
		PasswordHash: hashed,
	}
	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return "", ErrUsernameTaken
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// Login проверяет пароль пользователя и возвращает его UID вместе с JWT.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (uid, token string, err error) {
	const op = "services.auth.Login"
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(user.Username, user.UID)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	return user.UID, token, nil
}

// ValidateToken проверяет JWT и возвращает информацию о пользователе.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return &models.User{
		Username: claims.Username,
		UID:      claims.UserUID,
	}, nil
}
