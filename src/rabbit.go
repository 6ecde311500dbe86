package main

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// QueuePublisher publica eventos en una cola durable de RabbitMQ.
// Cada Publish abre su propia conexión y la cierra al terminar; un fallo en
// cualquier paso se registra y se descarta, nunca llega al que llamó.
type QueuePublisher struct {
	url   string
	queue string
}

func NewQueuePublisher(url, queue string) *QueuePublisher {
	return &QueuePublisher{url: url, queue: queue}
}

func (p *QueuePublisher) Publish(evt Event) {
	if err := p.publish(evt); err != nil {
		log.Error().Err(err).
			Str("queue", p.queue).
			Str("event_type", evt.EventType).
			Msg("publish failed, event dropped")
		return
	}
	log.Info().
		Str("queue", p.queue).
		Str("event_type", evt.EventType).
		Msg("event published")
}

func (p *QueuePublisher) publish(evt Event) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return err
	}

	return ch.PublishWithContext(context.Background(), "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}
