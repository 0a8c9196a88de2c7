// Package feedbackhub предоставляет маршруты для основного приложения.
package feedbackhub

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/feedback-hub/internal/http/handlers/analytics/avgsentiment"
	"github.com/magabrotheeeer/feedback-hub/internal/http/handlers/analytics/countbytype"
	"github.com/magabrotheeeer/feedback-hub/internal/http/handlers/analytics/sentimentsummary"
	"github.com/magabrotheeeer/feedback-hub/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/feedback-hub/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/feedback-hub/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/feedback-hub/internal/http/handlers/feedback/create"
	"github.com/magabrotheeeer/feedback-hub/internal/http/handlers/feedback/list"
	"github.com/magabrotheeeer/feedback-hub/internal/http/handlers/feedback/listbyuser"
	"github.com/magabrotheeeer/feedback-hub/internal/http/handlers/feedback/read"
	"github.com/magabrotheeeer/feedback-hub/internal/http/handlers/feedback/remove"
	"github.com/magabrotheeeer/feedback-hub/internal/http/handlers/health"
	"github.com/magabrotheeeer/feedback-hub/internal/http/middlewarectx"
	analyticsservice "github.com/magabrotheeeer/feedback-hub/internal/services/analytics"
	authservice "github.com/magabrotheeeer/feedback-hub/internal/services/auth"
	feedbackservice "github.com/magabrotheeeer/feedback-hub/internal/services/feedback"
	"github.com/magabrotheeeer/feedback-hub/internal/storage"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.AuthService,
	feedbackService *feedbackservice.FeedbackService,
	analyticsService *analyticsservice.AnalyticsService,
	db *storage.Storage) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Приём обратной связи ограничен по частоте
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/feedback", create.New(logger, feedbackService).ServeHTTP)
		})

		r.Get("/all-feedback", list.New(logger, feedbackService).ServeHTTP)
		r.Get("/feedback/user/{userId}", listbyuser.New(logger, feedbackService).ServeHTTP)
		r.Get("/feedback/{id}", read.New(logger, feedbackService).ServeHTTP)
		r.Delete("/delete-feedback/{id}", remove.New(logger, feedbackService).ServeHTTP)

		r.Get("/sentiment-summary", sentimentsummary.New(logger, analyticsService).ServeHTTP)
		r.Get("/feedback-count-by-type", countbytype.New(logger, analyticsService).ServeHTTP)
		r.Get("/avg-sentiment-over-time", avgsentiment.New(logger, analyticsService).ServeHTTP)

		r.Get("/health", health.New(logger, db.DB).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Get("/me", me.New(logger).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
