package register

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

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			body: `{"username":"alice","password":"secret1"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "alice", "secret1").
					Return("uid-alice", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"userId":"uid-alice"`,
		},
		{
			name:           "некорректный json",
			body:           `{"username":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "отсутствует пароль",
			body:           `{"username":"alice"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `field Password is a required field`,
		},
		{
			name: "имя занято",
			body: `{"username":"alice","password":"secret1"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "alice", "secret1").
					Return("", services.ErrUsernameTaken)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"username already taken"`,
		},
		{
			name: "ошибка сервиса",
			body: `{"username":"alice","password":"secret1"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "alice", "secret1").
					Return("", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to register user"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
