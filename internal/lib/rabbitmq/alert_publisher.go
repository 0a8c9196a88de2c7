package rabbitmq

import (
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/feedback-hub/internal/models"
)

// AlertPublisher публикует оповещения о негативной обратной связи
// в exchange оповещений.
type AlertPublisher struct {
	ch *amqp.Channel
}

// NewAlertPublisher создает новый экземпляр AlertPublisher.
func NewAlertPublisher(ch *amqp.Channel) *AlertPublisher {
	return &AlertPublisher{ch: ch}
}

// PublishNegativeFeedback публикует оповещение об отрицательном отзыве.
func (p *AlertPublisher) PublishNegativeFeedback(alert models.NegativeFeedbackAlert) error {
	return PublishMessage(p.ch, AlertsExchange, NegativeFeedbackRoutingKey, alert)
}
