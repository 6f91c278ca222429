package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Channel is the subset of *amqp.Channel the publisher uses
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitmqPublisher publishes JSON events to a topic exchange
type RabbitmqPublisher struct {
	channel  Channel
	exchange string
	closer   func() error
}

// DialRabbitmq connects to url and declares the durable topic exchange
func DialRabbitmq(url, exchange string) (*RabbitmqPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	logrus.WithField("exchange", exchange).Info("Connected to RabbitMQ")

	p := NewRabbitmqPublisher(ch, exchange)
	p.closer = conn.Close
	return p, nil
}

func NewRabbitmqPublisher(ch Channel, exchange string) *RabbitmqPublisher {
	return &RabbitmqPublisher{channel: ch, exchange: exchange}
}

func (p *RabbitmqPublisher) PublishTokenMinted(ctx context.Context, event TokenMinted) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.channel.PublishWithContext(ctx, p.exchange, RoutingTokenMinted, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		Timestamp:    time.Now(),
		DeliveryMode: amqp.Persistent,
		MessageId:    event.TokenID,
	})
}

// Close releases the broker connection when the publisher owns one
func (p *RabbitmqPublisher) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}
