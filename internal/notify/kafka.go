package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaSink forwards storefront events to a Kafka topic so downstream
// consumers (order processing, analytics) can pick them up.
type KafkaSink struct {
	writer *kafka.Writer
}

func NewKafkaSink(topic string, brokers ...string) *KafkaSink {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		WriteTimeout:           10 * time.Second,
	}
	return &KafkaSink{writer: w}
}

func (s *KafkaSink) Publish(ctx context.Context, event Event) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka publish failed: %w", err)
	}
	return nil
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}

func newMessage(event Event) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event failed: %w", err)
	}

	return kafka.Message{
		Key:   []byte(event.Name), // events of one kind stay ordered
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Name)},
		},
	}, nil
}
