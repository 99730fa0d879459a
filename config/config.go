package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
)

// Load reads a .env file if one is present. Missing files are fine; real
// environment variables always win.
func Load() {
	_ = godotenv.Load()
}

func HTTPAddr() string {
	return getenv("HTTP_ADDR", ":8080")
}

func QRBaseURL() string {
	return getenv("QR_BASE_URL", "http://localhost:8080")
}

func KafkaBroker() string {
	return os.Getenv("KAFKA_BROKER")
}

func OrdersTopic() string {
	return getenv("KAFKA_ORDERS_TOPIC", "dineout.orders")
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(KafkaBroker()),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
