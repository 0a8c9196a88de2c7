package list

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

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ListAll(ctx context.Context) ([]*models.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Feedback), args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "массив записей, новые первыми",
			setupMock: func(m *MockService) {
				m.On("ListAll", mock.Anything).Return([]*models.Feedback{
					{ID: 2, FeedbackText: "newer", SentimentLabel: "positive"},
					{ID: 1, FeedbackText: "older", SentimentLabel: "negative"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"feedback_text":"newer"`,
		},
		{
			name: "пустой массив, не null",
			setupMock: func(m *MockService) {
				m.On("ListAll", mock.Anything).Return([]*models.Feedback{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "ошибка сервиса",
			setupMock: func(m *MockService) {
				m.On("ListAll", mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to list feedback"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/all-feedback", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
