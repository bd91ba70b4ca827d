// Package event publishes content-change messages to RabbitMQ so
// downstream consumers (search indexer, cache purger) can react to
// admin writes. Publishing is optional: without a broker URI the
// server runs with NopPublisher.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Actions carried in the routing key content.<resource>.<action>.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

type ContentChangedMessage struct {
	Event     string    `json:"event"`
	Resource  string    `json:"resource"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

type Publisher interface {
	PublishContentChanged(ctx context.Context, resource, action, id string) error
	Close()
}

// PublishingChannel is the slice of *amqp.Channel we use, split out so
// tests can substitute a mock.
type PublishingChannel interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) error
	Close() error
}

type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       PublishingChannel
	exchange string
	logger   *log.Logger
}

func NewRabbitPublisher(uri, exchange string, logger *log.Logger) (*RabbitPublisher, error) {
	if logger == nil {
		logger = log.Default()
	}

	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq connection failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel creation failed: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("exchange declare failed: %w", err)
	}

	return &RabbitPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

func (p *RabbitPublisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

func (p *RabbitPublisher) PublishContentChanged(ctx context.Context, resource, action, id string) error {
	key := fmt.Sprintf("content.%s.%s", resource, action)

	body, err := json.Marshal(ContentChangedMessage{
		Event:     key,
		Resource:  resource,
		ID:        id,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(
		ctx,
		p.exchange,
		key,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		},
	)
}

// NopPublisher drops all messages; used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishContentChanged(context.Context, string, string, string) error {
	return nil
}

func (NopPublisher) Close() {}
