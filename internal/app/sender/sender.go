// Package sender собирает сервис отправки почтовых оповещений
// о негативной обратной связи.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/feedback-hub/internal/config"
	"github.com/magabrotheeeer/feedback-hub/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/feedback-hub/internal/lib/smtp"
	senderservice "github.com/magabrotheeeer/feedback-hub/internal/services/sender"
)

// App собирает консьюмер очереди оповещений и SMTP отправку.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

// New подключается к брокеру и инициализирует SMTP транспорт.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetAlertQueues())
	if err != nil {
		conn.Close()
		return nil, err
	}

	newTransport := smtp.NewTransport(cfg, logger)
	senderService := senderservice.NewSenderService(cfg, logger, newTransport)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

// Run запускает консьюмер очереди и работает до отмены контекста.
func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.NegativeFeedbackQueue, a.senderService.SendNegativeFeedbackAlert)
	if err != nil {
		a.logger.Error("failed to start negative feedback consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
