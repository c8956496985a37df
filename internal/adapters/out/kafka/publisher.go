// Package kafka publishes status-change events to a Kafka topic for
// downstream consumers (storefront views, customer notifications).
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"shipping/internal/core/ports"

	"github.com/IBM/sarama"
)

// StatusChangedPublisher implements ports.StatusEventPublisher on top of a
// sarama synchronous producer. Messages are keyed by order ID so all events of
// one order land on the same partition, preserving their order.
type StatusChangedPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewStatusChangedPublisher connects a synchronous producer to the given
// brokers and publishes to topic. Close the publisher on shutdown.
func NewStatusChangedPublisher(brokers []string, topic string, logger *slog.Logger) (*StatusChangedPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}

	return newStatusChangedPublisher(producer, topic, logger), nil
}

func newStatusChangedPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *StatusChangedPublisher {
	return &StatusChangedPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish sends one status-changed event. Returns the producer error so the
// caller can decide whether delivery matters; transitions are already durable
// when this is called.
func (p *StatusChangedPublisher) Publish(_ context.Context, event ports.StatusChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		p.logger.Error("failed to publish status change",
			"topic", p.topic, "orderId", event.OrderID, "error", err)
		return err
	}

	p.logger.Info("status change published",
		"topic", p.topic, "orderId", event.OrderID,
		"newStatus", event.NewStatus, "partition", partition, "offset", offset)
	return nil
}

// Close shuts down the underlying producer.
func (p *StatusChangedPublisher) Close() error {
	return p.producer.Close()
}
