package listbyuser

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/feedback-hub/internal/models"
)

// MockService реализует интерфейс listbyuser.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ListByUser(ctx context.Context, userUID string) ([]*models.Feedback, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Feedback), args.Error(1)
}

func TestListByUserHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		userID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "записи пользователя",
			userID: "uid-alice",
			setupMock: func(m *MockService) {
				m.On("ListByUser", mock.Anything, "uid-alice").Return([]*models.Feedback{
					{ID: 3, FeedbackText: "from alice"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"feedback_text":"from alice"`,
		},
		{
			name:   "неизвестный пользователь даёт пустой массив",
			userID: "uid-nobody",
			setupMock: func(m *MockService) {
				m.On("ListByUser", mock.Anything, "uid-nobody").
					Return([]*models.Feedback{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/feedback/user/"+tt.userID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userId", tt.userID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
