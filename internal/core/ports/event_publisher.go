package ports

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// OrderEventPublisher emits integration events when an order changes state.
// Publishing is best-effort: command handlers log failures but never roll back
// a committed transaction because of them.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error

	// Close flushes buffered events and releases the underlying producer.
	Close()
}
