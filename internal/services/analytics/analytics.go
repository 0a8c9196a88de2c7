// Package services содержит бизнес-логику агрегированных отчётов по обратной связи.
//
// Отчёты всегда строятся по текущему состоянию таблицы: кэширование
// не используется, каждое обращение выполняет живой агрегирующий запрос.
package services

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/feedback-hub/internal/models"
)

// AnalyticsRepository определяет агрегирующие запросы хранилища.
type AnalyticsRepository interface {
	// SentimentSummary возвращает количество записей по каждой встречающейся метке.
	SentimentSummary(ctx context.Context) ([]*models.SentimentCount, error)
	// CountByType возвращает количество записей по категориям.
	CountByType(ctx context.Context) ([]*models.TypeCount, error)
	// AverageSentimentOverTime возвращает среднюю тональность по суткам.
	AverageSentimentOverTime(ctx context.Context) ([]*models.DailySentiment, error)
}

// AnalyticsService отдаёт агрегированные отчёты для дашборда.
type AnalyticsService struct {
	repo AnalyticsRepository
}

// NewAnalyticsService создает новый экземпляр AnalyticsService.
func NewAnalyticsService(repo AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// SentimentSummary возвращает распределение тональностей.
// Метки без записей в отчёт не включаются.
func (s *AnalyticsService) SentimentSummary(ctx context.Context) ([]*models.SentimentCount, error) {
	const op = "services.analytics.SentimentSummary"
	res, err := s.repo.SentimentSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// CountByType возвращает количество записей по категориям,
// включая пустую категорию.
func (s *AnalyticsService) CountByType(ctx context.Context) ([]*models.TypeCount, error) {
	const op = "services.analytics.CountByType"
	res, err := s.repo.CountByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// AverageSentimentOverTime возвращает среднюю тональность по календарным
// суткам, отсортированную по возрастанию даты.
func (s *AnalyticsService) AverageSentimentOverTime(ctx context.Context) ([]*models.DailySentiment, error) {
	const op = "services.analytics.AverageSentimentOverTime"
	res, err := s.repo.AverageSentimentOverTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}
