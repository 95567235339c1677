package fulfillment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

// Producer publishes fulfillment orders to the partner queue.
type Producer interface {
	PublishFulfillmentOrder(ctx context.Context, order *Order) error
	Close() error
}

// KafkaProducerConfig contains configuration for the Kafka fulfillment producer
type KafkaProducerConfig struct {
	Brokers          []string
	Topic            string
	RetryMax         int
	TimeoutMs        int
	RequiredAcks     sarama.RequiredAcks
	IdempotentWrites bool
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          []string{"localhost:9092"},
		Topic:            "fulfillment-orders",
		RetryMax:         3,
		TimeoutMs:        10000, // 10 seconds
		RequiredAcks:     sarama.WaitForAll,
		IdempotentWrites: true,
	}
}

// KafkaProducer publishes fulfillment orders via a sarama sync producer.
type KafkaProducer struct {
	producer sarama.SyncProducer
	config   *KafkaProducerConfig
}

// NewKafkaProducer creates a Kafka fulfillment producer.
func NewKafkaProducer(config *KafkaProducerConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = config.IdempotentWrites

	// Enable idempotent producer
	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps one session's orders on one partition.
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaProducer{producer: producer, config: config}, nil
}

// PublishFulfillmentOrder publishes a single fulfillment order to Kafka.
func (kp *KafkaProducer) PublishFulfillmentOrder(ctx context.Context, order *Order) error {
	messageBytes, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal fulfillment order: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: kp.config.Topic,
		Key:   sarama.StringEncoder(order.SessionKey),
		Value: sarama.ByteEncoder(messageBytes),
	}

	if _, _, err := kp.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to send fulfillment order: %w", err)
	}
	return nil
}

// Close shuts down the underlying producer.
func (kp *KafkaProducer) Close() error {
	return kp.producer.Close()
}
