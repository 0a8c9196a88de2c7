// Package services содержит бизнес-логику приёма и чтения обратной связи.
//
// При приёме записи сначала выполняется классификация тональности,
// её результат прикрепляется к записи единой парой (метка, балл),
// и только затем запись сохраняется. Записи неизменяемы после создания,
// допускается лишь удаление.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/feedback-hub/internal/lib/sl"
	"github.com/magabrotheeeer/feedback-hub/internal/models"
	"github.com/magabrotheeeer/feedback-hub/internal/sentiment"
)

// Ошибки валидации входных данных.
var (
	// ErrEmptyText возвращается при пустом тексте обратной связи.
	ErrEmptyText = errors.New("feedback text is empty")
	// ErrInvalidRole возвращается при роли вне перечня guest/user/admin.
	ErrInvalidRole = errors.New("invalid role")
)

const cacheTTL = 5 * time.Minute

// FeedbackRepository определяет методы для работы с записями в хранилище.
type FeedbackRepository interface {
	// CreateFeedback добавляет новую запись и возвращает её ID.
	CreateFeedback(ctx context.Context, entry models.Feedback) (int, error)
	// RemoveFeedback удаляет запись по ID и возвращает количество удалённых строк.
	RemoveFeedback(ctx context.Context, id int) (int, error)
	// ReadFeedback возвращает запись по ID.
	ReadFeedback(ctx context.Context, id int) (*models.Feedback, error)
	// ListAllFeedback возвращает все записи, новые первыми.
	ListAllFeedback(ctx context.Context) ([]*models.Feedback, error)
	// ListFeedbackByUser возвращает записи пользователя, новые первыми.
	ListFeedbackByUser(ctx context.Context, userUID string) ([]*models.Feedback, error)
}

// Classifier вычисляет метку и compound-балл тональности текста.
type Classifier interface {
	Classify(text string) (sentiment.Label, float64)
}

// AlertPublisher публикует оповещение о записи с отрицательной тональностью.
type AlertPublisher interface {
	PublishNegativeFeedback(alert models.NegativeFeedbackAlert) error
}

// Cache кэширует единичные чтения записей.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// FeedbackService реализует приём, чтение и удаление обратной связи.
type FeedbackService struct {
	repo       FeedbackRepository
	classifier Classifier
	publisher  AlertPublisher
	cache      Cache
	log        *slog.Logger
}

// NewFeedbackService создает новый экземпляр FeedbackService.
func NewFeedbackService(repo FeedbackRepository, classifier Classifier,
	publisher AlertPublisher, cache Cache, log *slog.Logger) *FeedbackService {
	return &FeedbackService{
		repo:       repo,
		classifier: classifier,
		publisher:  publisher,
		cache:      cache,
		log:        log,
	}
}

// Create классифицирует текст, прикрепляет результат к записи и сохраняет её.
// Отсутствующие необязательные поля остаются пустыми строками.
// Для отрицательной тональности публикуется оповещение; ошибка публикации
// логируется и не влияет на результат сохранения.
func (s *FeedbackService) Create(ctx context.Context, req models.DummyFeedback) (int, error) {
	const op = "services.feedback.Create"

	if req.FeedbackText == "" {
		return 0, ErrEmptyText
	}
	if !models.ValidRole(req.Role) {
		return 0, ErrInvalidRole
	}

	label, score := s.classifier.Classify(req.FeedbackText)

	entry := models.Feedback{
		UserUID:        req.UserUID,
		Username:       req.Username,
		Role:           req.Role,
		FeedbackType:   req.FeedbackType,
		FeedbackText:   req.FeedbackText,
		SentimentLabel: string(label),
		SentimentScore: score,
	}

	id, err := s.repo.CreateFeedback(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if label == sentiment.LabelNegative && s.publisher != nil {
		alert := models.NegativeFeedbackAlert{
			FeedbackID:     id,
			Username:       entry.Username,
			FeedbackType:   entry.FeedbackType,
			FeedbackText:   entry.FeedbackText,
			SentimentScore: entry.SentimentScore,
		}
		if err := s.publisher.PublishNegativeFeedback(alert); err != nil {
			s.log.Error("failed to publish negative feedback alert", sl.Err(err))
		}
	}

	return id, nil
}

// Remove удаляет запись по ID и возвращает количество удалённых строк.
// Перед удалением инвалидируется кэш единичного чтения.
func (s *FeedbackService) Remove(ctx context.Context, id int) (int, error) {
	const op = "services.feedback.Remove"

	if s.cache != nil {
		if err := s.cache.Invalidate(cacheKey(id)); err != nil {
			s.log.Error("failed to invalidate feedback cache", sl.Err(err))
		}
	}

	removed, err := s.repo.RemoveFeedback(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return removed, nil
}

// Read возвращает запись по ID, используя кэш для повторных чтений.
func (s *FeedbackService) Read(ctx context.Context, id int) (*models.Feedback, error) {
	const op = "services.feedback.Read"

	if s.cache != nil {
		var cached models.Feedback
		found, err := s.cache.Get(cacheKey(id), &cached)
		if err != nil {
			s.log.Error("failed to read feedback cache", sl.Err(err))
		}
		if found {
			return &cached, nil
		}
	}

	entry, err := s.repo.ReadFeedback(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(cacheKey(id), entry, cacheTTL); err != nil {
			s.log.Error("failed to store feedback in cache", sl.Err(err))
		}
	}
	return entry, nil
}

// ListAll возвращает все записи, новые первыми. Кэш не используется:
// вставленная запись видна сразу после возврата Create.
func (s *FeedbackService) ListAll(ctx context.Context) ([]*models.Feedback, error) {
	const op = "services.feedback.ListAll"
	res, err := s.repo.ListAllFeedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// ListByUser возвращает записи пользователя, новые первыми.
// Для неизвестного пользователя возвращается пустой список.
func (s *FeedbackService) ListByUser(ctx context.Context, userUID string) ([]*models.Feedback, error) {
	const op = "services.feedback.ListByUser"
	res, err := s.repo.ListFeedbackByUser(ctx, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

func cacheKey(id int) string {
	return fmt.Sprintf("feedback:%d", id)
}
