package login

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

	services "github.com/magabrotheeeer/feedback-hub/internal/services/auth"
)

// MockService реализует интерфейс login.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, username, password string) (string, string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.String(1), args.Error(2)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешный вход",
			body: `{"username":"alice","password":"secret1"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "alice", "secret1").
					Return("uid-alice", "jwt-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"userId":"uid-alice"`,
		},
		{
			name: "неверный пароль",
			body: `{"username":"alice","password":"wrong"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "alice", "wrong").
					Return("", "", services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid credentials"`,
		},
		{
			name: "неизвестное имя даёт тот же ответ",
			body: `{"username":"nobody","password":"secret1"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "nobody", "secret1").
					Return("", "", services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid credentials"`,
		},
		{
			name:           "отсутствуют поля",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `required field`,
		},
		{
			name: "ошибка сервиса",
			body: `{"username":"alice","password":"secret1"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "alice", "secret1").
					Return("", "", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to login"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
