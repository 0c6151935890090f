// Package notify implements the optional cart-change notification channel.
// It is the extension point for stronger cross-page consistency; the store
// works identically with no publisher configured.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pirayth/gardenshop/internal/usecase"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "cart.events"
	routingKey   = "cart.changed"
	queueName    = "cart.changed.q"
)

// RabbitPublisher implements usecase.ChangePublisher over a topic exchange.
type RabbitPublisher struct {
	ch *amqp.Channel
}

// NewRabbitPublisher sets up the exchange, queue, and binding once at startup.
func NewRabbitPublisher(ch *amqp.Channel) (*RabbitPublisher, error) {
	if err := ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, routingKey, exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("queue bind: %w", err)
	}

	return &RabbitPublisher{ch: ch}, nil
}

func (p *RabbitPublisher) PublishCartChanged(ctx context.Context, msg usecase.CartChangedMsg) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, pub); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

var _ usecase.ChangePublisher = (*RabbitPublisher)(nil)
