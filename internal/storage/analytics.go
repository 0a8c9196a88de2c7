package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/feedback-hub/internal/models"
)

// SentimentSummary возвращает количество записей по каждой встречающейся
// метке тональности. Метки без записей в результат не включаются.
func (s *Storage) SentimentSummary(ctx context.Context) ([]*models.SentimentCount, error) {
	const op = "storage.SentimentSummary"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT sentiment_label, COUNT(*) AS count
			  FROM feedback
			  GROUP BY sentiment_label
			  ORDER BY count DESC, sentiment_label`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.SentimentCount, 0)
	for rows.Next() {
		var item models.SentimentCount
		if err := rows.Scan(&item.SentimentLabel, &item.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountByType возвращает количество записей по категориям.
// Категория группируется по исходной строке, включая пустую.
func (s *Storage) CountByType(ctx context.Context) ([]*models.TypeCount, error) {
	const op = "storage.CountByType"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT feedback_type, COUNT(*) AS count
			  FROM feedback
			  GROUP BY feedback_type
			  ORDER BY count DESC, feedback_type`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.TypeCount, 0)
	for rows.Next() {
		var item models.TypeCount
		if err := rows.Scan(&item.FeedbackType, &item.Count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// AverageSentimentOverTime возвращает среднюю тональность по календарным
// суткам created_at, отсортированную по возрастанию даты.
func (s *Storage) AverageSentimentOverTime(ctx context.Context) ([]*models.DailySentiment, error) {
	const op = "storage.AverageSentimentOverTime"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT to_char(created_at, 'YYYY-MM-DD') AS date,
			      AVG(sentiment_score) AS avg_score
			  FROM feedback
			  GROUP BY date
			  ORDER BY date ASC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.DailySentiment, 0)
	for rows.Next() {
		var item models.DailySentiment
		if err := rows.Scan(&item.Date, &item.AvgScore); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
