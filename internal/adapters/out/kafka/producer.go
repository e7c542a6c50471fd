// Package kafka publishes order lifecycle events. Messages are keyed by order id so all
// events of one order land on the same partition in commit order.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"waiter/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventProducer implements ports.OrderEventPublisher on top of a kafka-go writer.
type OrderEventProducer struct {
	writer messageWriter
	logger *slog.Logger
}

// NewOrderEventProducer writes to topic on the comma separated brokers.
func NewOrderEventProducer(brokersCSV, topic string, logger *slog.Logger) *OrderEventProducer {
	return newOrderEventProducer(&kafka.Writer{
		Addr:         kafka.TCP(splitBrokers(brokersCSV)...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}, logger)
}

func newOrderEventProducer(writer messageWriter, logger *slog.Logger) *OrderEventProducer {
	return &OrderEventProducer{
		writer: writer,
		logger: logger.With("component", "order_event_producer"),
	}
}

func (p *OrderEventProducer) PublishOrderCreated(ctx context.Context, o *order.Order) error {
	event, err := newOrderEvent(EventOrderCreated, o)
	if err != nil {
		return err
	}

	return p.publish(ctx, event)
}

func (p *OrderEventProducer) PublishOrderStateChanged(ctx context.Context, o *order.Order, previous order.State) error {
	event, err := newOrderEvent(EventOrderStateChanged, o)
	if err != nil {
		return err
	}
	event.PreviousState = previous.Code()

	return p.publish(ctx, event)
}

// Close flushes pending messages.
func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}

func (p *OrderEventProducer) publish(ctx context.Context, event OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  time.Now().UTC(),
	}); err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "order event published", "type", event.Type, "order_id", event.OrderID)
	return nil
}

func splitBrokers(brokersCSV string) []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
