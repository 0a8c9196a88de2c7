// Package services содержит бизнес-логику отправки почтовых оповещений
// об отрицательной обратной связи.
package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/feedback-hub/internal/config"
	"github.com/magabrotheeeer/feedback-hub/internal/lib/sl"
	"github.com/magabrotheeeer/feedback-hub/internal/lib/smtp"
	"github.com/magabrotheeeer/feedback-hub/internal/models"
)

// SenderService отправляет письма модераторам по событиям из очереди.
type SenderService struct {
	transport  Transport
	alertEmail string
	log        *slog.Logger
}

// Transport описывает контракт SMTP транспорта.
type Transport interface {
	Connect() (smtp.Client, error)
	GetSMTPUser() string
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(cfg *config.Config, log *slog.Logger, transport Transport) *SenderService {
	return &SenderService{
		transport:  transport,
		alertEmail: cfg.AlertEmail,
		log:        log,
	}
}

// SendNegativeFeedbackAlert отправляет письмо об отрицательном отзыве.
// Тело сообщения — JSON из очереди оповещений.
func (s *SenderService) SendNegativeFeedbackAlert(body []byte) error {
	var message models.NegativeFeedbackAlert
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	username := message.Username
	if username == "" {
		username = "аноним"
	}

	to := []string{s.alertEmail}
	subject := fmt.Sprintf("Отрицательный отзыв #%d", message.FeedbackID)
	bodyText := fmt.Sprintf("Получен отрицательный отзыв.\n\nАвтор: %s\nКатегория: %s\nОценка тональности: %.4f\n\nТекст:\n%s",
		username, message.FeedbackType, message.SentimentScore, message.FeedbackText)

	return s.sendEmail(to, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			s.log.Debug("failed to close SMTP client", sl.Err(closeErr))
		}
	}()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", "from", s.transport.GetSMTPUser(), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", "recipient", addr, sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("alert email sent", "to", to)
	return nil
}
