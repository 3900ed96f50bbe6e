package notify

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
)

// setupKafka starts a Kafka container and returns a broker address
func setupKafka(t *testing.T) string {
	ctx := context.Background()

	kafkaContainer, err := kafka.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err)
	t.Cleanup(func() {
		if errTerm := kafkaContainer.Terminate(ctx); errTerm != nil {
			t.Logf("failed to terminate kafka container: %v", errTerm)
		}
	})

	brokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers, "broker address should not be empty")

	return brokers[0]
}

func TestKafkaSink_PublishesEvents(t *testing.T) {
	if os.Getenv("KAFKA_INTEGRATION_TEST") == "" {
		t.Skip("set KAFKA_INTEGRATION_TEST=1 to run (requires docker)")
	}

	brokerAddr := setupKafka(t)

	sink := NewKafkaSink("storefront-orders", brokerAddr)
	defer sink.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	event := Event{
		Name:     EventPaymentSuccessful,
		Message:  "Your payment of $402.96 has been processed successfully.",
		Severity: SeverityNormal,
	}
	require.NoError(t, sink.Publish(ctx, event))

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:  []string{brokerAddr},
		Topic:    "storefront-orders",
		GroupID:  "test-consumer",
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	msg, err := reader.ReadMessage(ctx)
	require.NoError(t, err)

	assert.Equal(t, EventPaymentSuccessful, string(msg.Key))

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.Message, decoded.Message)
	assert.Equal(t, SeverityNormal, decoded.Severity)
}
