package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/feedback-hub/internal/models"
)

// RegisterUser сохраняет нового пользователя и возвращает его UID.
// При занятом username возвращает ErrAlreadyExists.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (uid, username, password_hash)
			  VALUES ($1, $2, $3)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.UID, user.Username, user.PasswordHash).Scan(&newUID); err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetUserByUsername возвращает пользователя по его username.
// Возвращает ErrNotFound, если пользователь не зарегистрирован.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, username, password_hash, created_at
			  FROM users
			  WHERE username = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, username)

	if err := row.Scan(&u.UID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
