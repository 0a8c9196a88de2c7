package feedbackhub

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/feedback-hub/internal/cache"
	"github.com/magabrotheeeer/feedback-hub/internal/config"
	"github.com/magabrotheeeer/feedback-hub/internal/lib/jwt"
	"github.com/magabrotheeeer/feedback-hub/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/feedback-hub/internal/migrations"
	"github.com/magabrotheeeer/feedback-hub/internal/sentiment"
	analyticsservice "github.com/magabrotheeeer/feedback-hub/internal/services/analytics"
	authservice "github.com/magabrotheeeer/feedback-hub/internal/services/auth"
	feedbackservice "github.com/magabrotheeeer/feedback-hub/internal/services/feedback"
	"github.com/magabrotheeeer/feedback-hub/internal/storage"
	"github.com/streadway/amqp"
)

// App собирает HTTP-сервер приёма обратной связи и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	conn   *amqp.Connection
	ch     *amqp.Channel
}

// New инициализирует хранилище, миграции, кэш, брокер оповещений и сервисы,
// затем собирает маршруты и HTTP-сервер.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetAlertQueues())
	if err != nil {
		conn.Close()
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	classifier := sentiment.NewClassifier()
	publisher := rabbitmq.NewAlertPublisher(ch)

	authService := authservice.NewAuthService(db, jwtMaker)
	feedbackService := feedbackservice.NewFeedbackService(db, classifier, publisher, cacheRedis, logger)
	analyticsService := analyticsservice.NewAnalyticsService(db)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, feedbackService, analyticsService, db)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		conn:   conn,
		ch:     ch,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if chErr := a.ch.Close(); chErr != nil {
			a.logger.Error("failed to close channel", slog.Any("err", chErr))
		}
		if connErr := a.conn.Close(); connErr != nil {
			a.logger.Error("failed to close connection", slog.Any("err", connErr))
		}
		a.db.DB.Close()
		return err
	}
}
