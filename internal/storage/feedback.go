package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/feedback-hub/internal/models"
)

// CreateFeedback вставляет новую запись обратной связи и возвращает её ID.
// Идентификатор и created_at назначает база данных.
func (s *Storage) CreateFeedback(ctx context.Context, entry models.Feedback) (int, error) {
	const op = "storage.CreateFeedback"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO feedback (user_uid, username, role, feedback_type,
			      feedback_text, sentiment_label, sentiment_score)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		entry.UserUID, entry.Username, entry.Role, entry.FeedbackType,
		entry.FeedbackText, entry.SentimentLabel, entry.SentimentScore).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// RemoveFeedback удаляет запись по ID и возвращает количество удалённых строк.
// Отсутствие строки не является ошибкой: вернётся 0.
func (s *Storage) RemoveFeedback(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveFeedback"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM feedback WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ReadFeedback возвращает запись обратной связи по её ID.
func (s *Storage) ReadFeedback(ctx context.Context, id int) (*models.Feedback, error) {
	const op = "storage.ReadFeedback"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, username, role, feedback_type, feedback_text,
			      sentiment_label, sentiment_score, created_at
			  FROM feedback WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var item models.Feedback
	var userUID sql.NullString
	if err := row.Scan(&item.ID, &userUID, &item.Username, &item.Role,
		&item.FeedbackType, &item.FeedbackText, &item.SentimentLabel,
		&item.SentimentScore, &item.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if userUID.Valid {
		item.UserUID = &userUID.String
	}
	return &item, nil
}

// ListAllFeedback возвращает все записи обратной связи, новые первыми.
// При равных created_at порядок стабилизируется убыванием ID.
func (s *Storage) ListAllFeedback(ctx context.Context) ([]*models.Feedback, error) {
	const op = "storage.ListAllFeedback"

	query := `SELECT id, user_uid, username, role, feedback_type, feedback_text,
			      sentiment_label, sentiment_score, created_at
			  FROM feedback
			  ORDER BY created_at DESC, id DESC`
	return s.listFeedback(ctx, op, query)
}

// ListFeedbackByUser возвращает записи пользователя, новые первыми.
// Для неизвестного пользователя возвращается пустой список.
func (s *Storage) ListFeedbackByUser(ctx context.Context, userUID string) ([]*models.Feedback, error) {
	const op = "storage.ListFeedbackByUser"

	query := `SELECT id, user_uid, username, role, feedback_type, feedback_text,
			      sentiment_label, sentiment_score, created_at
			  FROM feedback
			  WHERE user_uid = $1
			  ORDER BY created_at DESC, id DESC`
	return s.listFeedback(ctx, op, query, userUID)
}

func (s *Storage) listFeedback(ctx context.Context, op, query string, args ...any) ([]*models.Feedback, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.Feedback, 0)
	for rows.Next() {
		var item models.Feedback
		var userUID sql.NullString
		if err := rows.Scan(&item.ID, &userUID, &item.Username, &item.Role,
			&item.FeedbackType, &item.FeedbackText, &item.SentimentLabel,
			&item.SentimentScore, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if userUID.Valid {
			item.UserUID = &userUID.String
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
