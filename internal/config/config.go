package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	// HTTP configuration
	HTTPAddr string

	// Catalog configuration
	RedisURL        string
	CatalogSeedPath string

	// NATS configuration
	NatsEnabled        bool
	NatsURL            string
	NatsRequestSubject string
	NatsTimeout        time.Duration

	// Kafka configuration
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string

	// Service configuration
	ServiceName    string
	RequestTimeout time.Duration
}

func Load() *Config {
	return &Config{
		// HTTP settings
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		// Catalog settings (REDIS_URL set empty selects the in-memory store)
		RedisURL:        getEnvAllowEmpty("REDIS_URL", "redis://localhost:6379/0"),
		CatalogSeedPath: getEnv("CATALOG_SEED_PATH", ""),

		// NATS settings
		NatsEnabled:        getBoolEnv("NATS_ENABLED", false),
		NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		NatsRequestSubject: getEnv("NATS_REQUEST_SUBJECT", "chat.message"),
		NatsTimeout:        getDurationEnv("NATS_TIMEOUT", 30*time.Second),

		// Kafka settings
		KafkaEnabled: getBoolEnv("KAFKA_ENABLED", false),
		KafkaBrokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "catalog.products"),
		KafkaGroupID: getEnv("KAFKA_GROUP_ID", "shopbot-catalog"),

		// Service settings
		ServiceName:    getEnv("SERVICE_NAME", "shopbot"),
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAllowEmpty treats an explicitly empty value as meaningful instead of
// falling back to the default.
func getEnvAllowEmpty(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return defaultValue
}
