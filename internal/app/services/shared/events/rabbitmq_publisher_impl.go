package events

import (
	"carehome-service/internal/app/contracts"
	"carehome-service/internal/pkg/constvars"
	"carehome-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	mu      sync.Mutex
	Channel *amqp091.Channel
	Queue   string
}

// NewRabbitMQPublisher declares the durable mutation queue and publishes to it
// through the default exchange.
func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, queue string) (contracts.MutationPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return &rabbitMQPublisher{
		Channel: channel,
		Queue:   queue,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event contracts.MutationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type": "JSON",
		"resource":     event.Resource,
		"action":       event.Action,
	}

	message := amqp091.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp091.Persistent,
		MessageId:     event.ID,
		CorrelationId: event.RequestID,
		Timestamp:     event.OccurredAt,
		Headers:       headers,
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher is used when no broker is configured.
func NewNoopPublisher() contracts.MutationPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event contracts.MutationEvent) error {
	return nil
}
