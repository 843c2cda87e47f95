package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes notification messages to a single Kafka topic.
type KafkaPublisher struct {
	writer *kafka.Writer
	log    zerolog.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log zerolog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	return &KafkaPublisher{
		writer: writer,
		log:    log.With().Str("component", "notification").Logger(),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, message string) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(uuid.NewString()),
		Value: []byte(message),
	})
	if err != nil {
		p.log.Error().Err(err).Str("topic", p.writer.Topic).Msg("failed to publish notification")
		return err
	}

	p.log.Debug().Str("topic", p.writer.Topic).Msg("notification published")

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
