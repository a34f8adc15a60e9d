package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ClaimForAgent atomically assigns the order to the agent with a
	// conditional update: it succeeds only while the order is still in
	// ready_for_pickup with no agent. Returns false when another agent won
	// the race (or the order left the claimable state).
	ClaimForAgent(ctx context.Context, orderID, agentID kernel.UUID) (bool, error)
}
