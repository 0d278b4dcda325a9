package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	skafka "github.com/segmentio/kafka-go"
)

// Writer defines the subset of segmentio kafka.Writer we need. This makes the producer testable.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Publisher is the interface used by services to publish events.
type Publisher interface {
	// PublishEvent wraps payload as {"event": event, "payload": payload}
	// and writes it under key.
	PublishEvent(ctx context.Context, key, event string, payload interface{}) error
	Close() error
}

// KafkaProducer is a thin wrapper around a kafka writer implementing Publisher.
type KafkaProducer struct {
	writer Writer
}

// NewKafkaProducer creates a real KafkaProducer that writes to the provided broker/topic.
// LeastBytes spreads keys across partitions by load.
func NewKafkaProducer(brokerURL, topic string) *KafkaProducer {
	w := &skafka.Writer{
		Addr:                   skafka.TCP(brokerURL),
		Topic:                  topic,
		Balancer:               &skafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaProducer{writer: w}
}

// NewKafkaProducerWithWriter allows injecting a test writer.
func NewKafkaProducerWithWriter(w Writer) *KafkaProducer {
	return &KafkaProducer{writer: w}
}

// PublishEvent marshals the envelope to JSON and writes a kafka message with the given key.
func (p *KafkaProducer) PublishEvent(ctx context.Context, key, event string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("kafka: marshal %s payload: %w", event, err)
	}
	value, err := json.Marshal(envelope{Event: event, Payload: body})
	if err != nil {
		return fmt.Errorf("kafka: marshal %s envelope: %w", event, err)
	}
	msg := skafka.Message{Key: []byte(key), Value: value}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Printf("kafka: write %s failed: %v", event, err)
		return err
	}
	log.Printf("kafka: published %s key=%s", event, key)
	return nil
}

// Close closes the underlying writer.
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}

type envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}
