package kafka

import (
	"context"
	"log"
	"time"

	skafka "github.com/segmentio/kafka-go"
)

// Reader is the subset of kafka.Reader the consumer loop uses.
type Reader interface {
	FetchMessage(ctx context.Context) (skafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Handler processes one message. Returning an error leaves the offset
// uncommitted so the message is delivered again.
type Handler func(ctx context.Context, key []byte, value []byte) error

// Consumer holds the connection to the Kafka server.
type Consumer struct {
	reader         Reader
	topic          string
	groupID        string
	handlerTimeout time.Duration
	retryBackoff   time.Duration
}

// NewConsumer creates a group consumer. If several copies of a service run
// with the same groupID they split the partitions between them.
func NewConsumer(brokers []string, topic string, groupID string) *Consumer {
	r := skafka.NewReader(skafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
	})
	return NewConsumerWithReader(r, topic, groupID)
}

// NewConsumerWithReader allows injecting a test reader.
func NewConsumerWithReader(r Reader, topic, groupID string) *Consumer {
	return &Consumer{
		reader:         r,
		topic:          topic,
		groupID:        groupID,
		handlerTimeout: 10 * time.Second,
		retryBackoff:   time.Second,
	}
}

// Start fetches, handles and commits messages until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context, handler Handler) {
	log.Printf("kafka: consumer started topic=%s group=%s", c.topic, c.groupID)

	for {
		if ctx.Err() != nil {
			return
		}

		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("kafka: fetch failed: %v", err)
			select {
			case <-time.After(c.retryBackoff):
			case <-ctx.Done():
				return
			}
			continue
		}

		processCtx, cancel := context.WithTimeout(ctx, c.handlerTimeout)
		err = handler(processCtx, m.Key, m.Value)
		cancel()

		if err != nil {
			// Not committed: the group redelivers it.
			log.Printf("kafka: processing failed offset=%d: %v", m.Offset, err)
			continue
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			log.Printf("kafka: commit failed offset=%d: %v", m.Offset, err)
		}
	}
}

// Close disconnects from the server.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
