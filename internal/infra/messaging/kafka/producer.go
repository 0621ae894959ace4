// Package kafka publishes relay messages to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/blockrelay/internal/reactor"

	"github.com/segmentio/kafka-go"
)

const (
	defaultBatchTimeout = 10 * time.Millisecond
	defaultWriteTimeout = 10 * time.Second
)

type config struct {
	batchTimeout time.Duration
	writeTimeout time.Duration
	autoCreate   bool
}

// Option configures the producer.
type Option func(*config)

// WithBatchTimeout bounds how long messages wait to be batched.
func WithBatchTimeout(d time.Duration) Option {
	return func(c *config) {
		c.batchTimeout = d
	}
}

// WithWriteTimeout bounds each write to the brokers.
func WithWriteTimeout(d time.Duration) Option {
	return func(c *config) {
		c.writeTimeout = d
	}
}

// WithTopicCreation lets the brokers create the topic on first write.
func WithTopicCreation(enabled bool) Option {
	return func(c *config) {
		c.autoCreate = enabled
	}
}

// messageWriter is the part of *kafka.Writer the producer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type producer struct {
	topic  string
	writer messageWriter
}

var _ reactor.Writer = (*producer)(nil)

// NewProducer returns a producer writing to topic. Messages with the same key
// land on the same partition, so one chain's blocks stay ordered.
func NewProducer(brokers []string, topic string, opts ...Option) *producer {
	cfg := config{
		batchTimeout: defaultBatchTimeout,
		writeTimeout: defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &producer{
		topic: topic,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: cfg.autoCreate,
			BatchTimeout:           cfg.batchTimeout,
			WriteTimeout:           cfg.writeTimeout,
		},
	}
}

// Publish implements reactor.Writer. It blocks until the brokers acknowledge
// the message or ctx is done.
func (p *producer) Publish(ctx context.Context, key string, payload []byte) error {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writing to %s: %w", p.topic, err)
	}

	return nil
}

func (p *producer) Close() error {
	return p.writer.Close()
}
