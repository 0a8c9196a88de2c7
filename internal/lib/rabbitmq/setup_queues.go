package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// AlertsExchange — exchange для оповещений о негативной обратной связи.
const AlertsExchange = "alerts"

// NegativeFeedbackQueue и NegativeFeedbackRoutingKey задают маршрут
// сообщений о записях с отрицательной тональностью.
const (
	NegativeFeedbackQueue      = "feedback.negative_queue"
	NegativeFeedbackRoutingKey = "feedback.negative"
)

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetAlertQueues возвращает конфигурацию очередей оповещений.
func GetAlertQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: NegativeFeedbackQueue, RoutingKey: NegativeFeedbackRoutingKey},
	}
}

// SetupChannel открывает канал, объявляет exchange и привязывает очереди.
func SetupChannel(conn *amqp.Connection, queues []QueueConfig) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	err = ch.ExchangeDeclare(
		AlertsExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, q := range queues {
		_, err := ch.QueueDeclare(
			q.QueueName,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to declare queue %s: %w", op, q.QueueName, err)
		}

		err = ch.QueueBind(
			q.QueueName,
			q.RoutingKey,
			AlertsExchange,
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to bind queue %s with routing key %s: %w", op, q.QueueName, q.RoutingKey, err)
		}
	}

	return ch, nil
}
