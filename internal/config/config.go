package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "STOREFRONT"

type Config struct {
	App       AppConfig
	Chat      ChatConfig
	Payment   PaymentConfig
	Inventory InventoryConfig
	Catalog   CatalogConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Port            string        `envconfig:"STOREFRONT_APP_PORT" default:"8080"`
	LogLevel        string        `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	RequestTimeout  time.Duration `envconfig:"STOREFRONT_REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"STOREFRONT_SHUTDOWN_TIMEOUT" default:"10s"`
}

type ChatConfig struct {
	ReplyDelay time.Duration `envconfig:"STOREFRONT_CHAT_REPLY_DELAY" default:"1500ms"`
}

type PaymentConfig struct {
	ProcessingDelay time.Duration `envconfig:"STOREFRONT_PAYMENT_PROCESSING_DELAY" default:"2s"`
}

type InventoryConfig struct {
	DriftInterval time.Duration `envconfig:"STOREFRONT_INVENTORY_DRIFT_INTERVAL" default:"10s"`
}

type CatalogConfig struct {
	DBPath         string `envconfig:"STOREFRONT_CATALOG_DB_PATH" default:"./internal/catalog/products.db"`
	MigrationsPath string `envconfig:"STOREFRONT_CATALOG_MIGRATIONS_PATH" default:"./internal/catalog/migrations"`
}

// RedisConfig is optional: with no address the cart view cache is disabled
type RedisConfig struct {
	Address  string `envconfig:"STOREFRONT_REDIS_ADDR"`
	Password string `envconfig:"STOREFRONT_REDIS_PASSWORD"`
	DB       int    `envconfig:"STOREFRONT_REDIS_DB" default:"0"`
}

// KafkaConfig is optional: with no brokers events stay in the in-memory sink
type KafkaConfig struct {
	Brokers []string `envconfig:"STOREFRONT_KAFKA_BROKERS"`
	Topic   string   `envconfig:"STOREFRONT_KAFKA_TOPIC" default:"storefront-orders"`
}
