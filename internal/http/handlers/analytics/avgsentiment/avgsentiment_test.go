package avgsentiment

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

// MockService реализует интерфейс avgsentiment.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) AverageSentimentOverTime(ctx context.Context) ([]*models.DailySentiment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DailySentiment), args.Error(1)
}

func TestAvgSentimentHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Run("ряд по возрастанию даты", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("AverageSentimentOverTime", mock.Anything).Return([]*models.DailySentiment{
			{Date: "2025-02-01", AvgScore: 0.1},
			{Date: "2025-02-02", AvgScore: 0.8},
		}, nil)

		handler := New(logger, mockService)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/avg-sentiment-over-time", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.True(t, strings.Index(body, "2025-02-01") < strings.Index(body, "2025-02-02"),
			"dates should be ascending, got %s", body)
		mockService.AssertExpectations(t)
	})

	t.Run("ошибка сервиса", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("AverageSentimentOverTime", mock.Anything).
			Return(nil, errors.New("db error"))

		handler := New(logger, mockService)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/avg-sentiment-over-time", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockService.AssertExpectations(t)
	})
}
