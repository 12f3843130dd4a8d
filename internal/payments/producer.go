package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

// OrderEventType identifies the stage of the order lifecycle
type OrderEventType string

const (
	OrderEventSubmitted OrderEventType = "order.submitted"
	OrderEventConfirmed OrderEventType = "order.confirmed"
	OrderEventFailed    OrderEventType = "order.failed"
)

// OrderEvent is published to Kafka at each order lifecycle transition
type OrderEvent struct {
	Type       OrderEventType `json:"type"`
	OrderID    string         `json:"order_id"`
	OrderRef   string         `json:"order_ref"`
	GatewayRef string         `json:"gateway_ref,omitempty"`
	CustomerID string         `json:"customer_id"`
	EventID    string         `json:"event_id"`
	Amount     float64        `json:"amount"`
	Currency   string         `json:"currency"`
	Timestamp  time.Time      `json:"timestamp"`
}

// Producer publishes order lifecycle events
type Producer interface {
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error
	Close() error
}

// KafkaProducerConfig contains configuration for the Kafka order producer
type KafkaProducerConfig struct {
	Brokers      []string
	Topic        string
	RetryMax     int
	Timeout      time.Duration
	RequiredAcks sarama.RequiredAcks
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig(brokers []string, topic string) *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:      brokers,
		Topic:        topic,
		RetryMax:     3,
		Timeout:      10 * time.Second,
		RequiredAcks: sarama.WaitForAll,
	}
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaProducer creates a new Kafka order-event producer
func NewKafkaProducer(config *KafkaProducerConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Hash partitioner keeps one order's events in order
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		topic:    config.Topic,
	}, nil
}

func (p *kafkaProducer) PublishOrderEvent(ctx context.Context, event *OrderEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
		},
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	return nil
}

func (p *kafkaProducer) Close() error {
	return p.producer.Close()
}

// NopProducer discards events; used when Kafka is disabled
type NopProducer struct{}

func (NopProducer) PublishOrderEvent(ctx context.Context, event *OrderEvent) error { return nil }
func (NopProducer) Close() error                                                   { return nil }
