package ports

import (
	"context"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such delivery exists.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery created for an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetAllMissingCoordinates retrieves active deliveries whose pickup or
	// drop-off coordinate has not been geocoded yet, up to limit.
	GetAllMissingCoordinates(ctx context.Context, limit int) ([]*delivery.Delivery, error)
}
