// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, the geocoder, and
// the order event publisher.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Delete removes a product from the catalog.
	Delete(ctx context.Context, id kernel.UUID) error

	// ReserveStock atomically decrements the product's stock with a
	// conditional update: it succeeds only while the remaining stock covers
	// the quantity. Returns false when the stock was insufficient.
	ReserveStock(ctx context.Context, productID kernel.UUID, quantity float64) (bool, error)

	// ReleaseStock returns previously reserved stock after a cancellation.
	ReleaseStock(ctx context.Context, productID kernel.UUID, quantity float64) error
}
