package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 1500*time.Millisecond, cfg.Chat.ReplyDelay)
	assert.Equal(t, 2*time.Second, cfg.Payment.ProcessingDelay)
	assert.Equal(t, 10*time.Second, cfg.Inventory.DriftInterval)
	assert.Equal(t, "storefront-orders", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Redis.Address, "cache disabled unless configured")
	assert.Empty(t, cfg.Kafka.Brokers, "kafka disabled unless configured")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STOREFRONT_APP_PORT", "9999")
	t.Setenv("STOREFRONT_CHAT_REPLY_DELAY", "10ms")
	t.Setenv("STOREFRONT_KAFKA_BROKERS", "broker-1:9092,broker-2:9092")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.App.Port)
	assert.Equal(t, 10*time.Millisecond, cfg.Chat.ReplyDelay)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("STOREFRONT_REQUEST_TIMEOUT", "not-a-duration")

	_, err := Load()

	assert.Error(t, err)
}
