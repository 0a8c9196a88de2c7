package middlewarectx_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/feedback-hub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/feedback-hub/internal/models"
)

type authServiceStub struct {
	user *models.User
	err  error
}

func (s *authServiceStub) ValidateToken(_ context.Context, _ string) (*models.User, error) {
	return s.user, s.err
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestJWTMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		service    *authServiceStub
		wantStatus int
		wantCtx    bool
	}{
		{
			name:       "valid token puts user into context",
			header:     "Bearer sometoken",
			service:    &authServiceStub{user: &models.User{UID: "uid-1", Username: "alice"}},
			wantStatus: http.StatusOK,
			wantCtx:    true,
		},
		{
			name:       "missing header",
			header:     "",
			service:    &authServiceStub{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer sometoken",
			service:    &authServiceStub{err: errors.New("expired")},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUsername, gotUID any
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUsername = r.Context().Value(middlewarectx.User)
				gotUID = r.Context().Value(middlewarectx.UserUID)
				w.WriteHeader(http.StatusOK)
			})

			handler := middlewarectx.JWTMiddleware(tt.service, newNoopLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCtx {
				assert.Equal(t, "alice", gotUsername)
				assert.Equal(t, "uid-1", gotUID)
			}
		})
	}
}
