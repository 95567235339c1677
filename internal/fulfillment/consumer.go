package fulfillment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"keepsake/pkg/logger"
)

// Consumer listens for payment confirmations and hands them to the
// fulfillment service. This consumer is the only path to the partner queue:
// order submission never publishes fulfillment work directly.
type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

// ConsumerConfig contains configuration for the payment-confirmation consumer
type ConsumerConfig struct {
	Brokers          []string
	GroupID          string
	Topic            string
	SessionTimeoutMs int
	HeartbeatMs      int
	OffsetOldest     bool
}

// DefaultConsumerConfig returns a default consumer configuration
func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:          []string{"localhost:9092"},
		GroupID:          "keepsake-fulfillment-workers",
		Topic:            "payment-confirmations",
		SessionTimeoutMs: 30000,
		HeartbeatMs:      3000,
		OffsetOldest:     false,
	}
}

// KafkaConsumer consumes payment confirmations from Kafka.
type KafkaConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	service       Service
	log           *logger.Logger
	cancel        context.CancelFunc
}

// NewKafkaConsumer creates a payment-confirmation consumer.
func NewKafkaConsumer(config *ConsumerConfig, service Service, log *logger.Logger) (Consumer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Group.Heartbeat.Interval = time.Duration(config.HeartbeatMs) * time.Millisecond
	saramaConfig.Consumer.Return.Errors = true

	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	if log == nil {
		log = logger.GetDefault()
	}

	return &KafkaConsumer{
		consumerGroup: consumerGroup,
		config:        config,
		service:       service,
		log:           log,
	}, nil
}

// Start consumes until the context is canceled.
func (kc *KafkaConsumer) Start(ctx context.Context) error {
	ctx, kc.cancel = context.WithCancel(ctx)

	go kc.handleErrors(ctx)

	handler := &confirmationHandler{service: kc.service, log: kc.log}
	for {
		if err := kc.consumerGroup.Consume(ctx, []string{kc.config.Topic}, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) || ctx.Err() != nil {
				return nil
			}
			kc.log.ErrorWithContext(ctx, "Consumer group error", err, nil)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// Stop cancels consumption and closes the group.
func (kc *KafkaConsumer) Stop() error {
	if kc.cancel != nil {
		kc.cancel()
	}
	return kc.consumerGroup.Close()
}

func (kc *KafkaConsumer) handleErrors(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-kc.consumerGroup.Errors():
			if !ok {
				return
			}
			kc.log.ErrorWithContext(ctx, "Kafka consumer error", err, nil)
		}
	}
}

// confirmationHandler implements sarama.ConsumerGroupHandler.
type confirmationHandler struct {
	service Service
	log     *logger.Logger
}

func (h *confirmationHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *confirmationHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *confirmationHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		if err := processConfirmation(session.Context(), h.service, message.Value); err != nil {
			// A confirmation with no keepsake order is routine; everything
			// else is logged and the offset still advances — the payment
			// system redelivers on its own schedule, not ours.
			h.log.ErrorWithContext(session.Context(), "Failed to process payment confirmation", err, map[string]interface{}{
				"partition": message.Partition,
				"offset":    message.Offset,
			})
		}
		session.MarkMessage(message, "")
	}
	return nil
}

// processConfirmation decodes one payment-confirmation message and runs the
// fulfillment flow for it.
func processConfirmation(ctx context.Context, service Service, payload []byte) error {
	var confirmation PaymentConfirmation
	if err := json.Unmarshal(payload, &confirmation); err != nil {
		return fmt.Errorf("failed to decode payment confirmation: %w", err)
	}
	return service.HandlePaymentConfirmation(ctx, confirmation)
}
