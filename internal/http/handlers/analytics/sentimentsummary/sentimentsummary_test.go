package sentimentsummary

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/feedback-hub/internal/models"
)

// MockService реализует интерфейс sentimentsummary.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) SentimentSummary(ctx context.Context) ([]*models.SentimentCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SentimentCount), args.Error(1)
}

func TestSentimentSummaryHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Run("распределение без нулевых меток", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("SentimentSummary", mock.Anything).Return([]*models.SentimentCount{
			{SentimentLabel: "positive", Count: 3},
			{SentimentLabel: "negative", Count: 1},
		}, nil)

		handler := New(logger, mockService)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sentiment-summary", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), `"sentiment_label":"positive"`))
		assert.False(t, strings.Contains(w.Body.String(), `"neutral"`))
		mockService.AssertExpectations(t)
	})

	t.Run("ошибка сервиса", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("SentimentSummary", mock.Anything).
			Return(nil, errors.New("db error"))

		handler := New(logger, mockService)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sentiment-summary", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockService.AssertExpectations(t)
	})
}
