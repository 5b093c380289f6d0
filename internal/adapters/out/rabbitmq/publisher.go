// Package rabbitmq publishes committed order status changes to a topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// StatusChangedRoutingKey is the routing key of every status change message.
const StatusChangedRoutingKey = "order.status.changed"

const publishTimeout = 5 * time.Second

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// StatusChangedMessage is the JSON body of a status change message.
type StatusChangedMessage struct {
	EventID          string    `json:"event_id"`
	OrderID          int64     `json:"order_id"`
	Hash             string    `json:"hash"`
	PreviousStatusID *int64    `json:"previous_status_id"`
	StatusID         int64     `json:"status_id"`
	Invoice          string    `json:"invoice,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// StatusEventPublisher implements ports.EventPublisher over RabbitMQ.
type StatusEventPublisher struct {
	conn     *amqp.Connection
	channel  Channel
	exchange string
	logger   *zap.Logger
}

// Dial connects to the broker and declares the durable topic exchange.
func Dial(url, exchange string, logger *zap.Logger) (*StatusEventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, err
	}

	p := NewStatusEventPublisher(ch, exchange, logger)
	p.conn = conn
	return p, nil
}

// NewStatusEventPublisher publishes on an already opened channel.
func NewStatusEventPublisher(ch Channel, exchange string, logger *zap.Logger) *StatusEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusEventPublisher{
		channel:  ch,
		exchange: exchange,
		logger:   logger.With(zap.String("component", "rabbitmq-publisher")),
	}
}

func (p *StatusEventPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	msg := StatusChangedMessage{
		EventID:    event.EventID.String(),
		OrderID:    event.OrderID.Int64(),
		Hash:       event.Hash.String(),
		StatusID:   event.StatusID.Int64(),
		Invoice:    event.Invoice,
		OccurredAt: event.OccurredAt,
	}
	if event.PreviousStatusID != nil {
		previous := event.PreviousStatusID.Int64()
		msg.PreviousStatusID = &previous
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, p.exchange, StatusChangedRoutingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    msg.EventID,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return err
	}

	p.logger.Debug("status change published",
		zap.Int64("order_id", msg.OrderID),
		zap.Int64("status_id", msg.StatusID),
	)
	return nil
}

// Close closes the broker connection opened by Dial.
func (p *StatusEventPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return err
	}
	return nil
}

// NoopPublisher drops events. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishStatusChanged(context.Context, order.StatusChanged) error { return nil }
