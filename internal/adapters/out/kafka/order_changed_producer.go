// Package kafka publishes order integration events to a Kafka topic using
// franz-go.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/twmb/franz-go/pkg/kgo"
)

// orderChangedEvent is the wire payload for an order state change.
type orderChangedEvent struct {
	OrderID     string    `json:"order_id"`
	VendorID    string    `json:"vendor_id"`
	SupplierID  string    `json:"supplier_id"`
	AgentID     *string   `json:"agent_id,omitempty"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// OrderChangedProducer implements ports.OrderEventPublisher on top of a
// franz-go client. Records are produced asynchronously; delivery failures are
// logged, not returned, since publishing happens after the transaction commit.
type OrderChangedProducer struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewOrderChangedProducer creates a Kafka producer for order change events.
func NewOrderChangedProducer(brokers []string, topic string, logger *slog.Logger) (*OrderChangedProducer, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(10*time.Millisecond),
	)
	if err != nil {
		return nil, errs.NewDependencyUnavailableError("event broker", err)
	}

	return &OrderChangedProducer{
		client: client,
		topic:  topic,
		logger: logger.With("component", "order_changed_producer"),
	}, nil
}

// PublishOrderChanged emits the order's current state keyed by order ID, so
// consumers see changes for one order in order.
func (p *OrderChangedProducer) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var agentID *string
	if id := aggregate.AgentID(); id != nil {
		s := id.String()
		agentID = &s
	}

	payload, err := json.Marshal(orderChangedEvent{
		OrderID:     aggregate.ID().String(),
		VendorID:    aggregate.VendorID().String(),
		SupplierID:  aggregate.SupplierID().String(),
		AgentID:     agentID,
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount(),
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(aggregate.ID().String()),
		Value: payload,
		Headers: []kgo.RecordHeader{
			{Key: "event_type", Value: []byte("order_changed")},
		},
	}

	p.client.Produce(ctx, record, func(r *kgo.Record, produceErr error) {
		if produceErr != nil {
			p.logger.ErrorContext(ctx, "Failed to publish order change",
				"order_id", string(r.Key), "error", produceErr)
		}
	})

	return nil
}

// Close flushes buffered records and releases the client.
func (p *OrderChangedProducer) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.client.Flush(ctx); err != nil {
		p.logger.Error("Failed to flush pending events", "error", err)
	}

	p.client.Close()
}
