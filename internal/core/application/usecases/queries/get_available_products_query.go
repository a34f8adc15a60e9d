package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetAvailableProductsQueryIsNotConstructed = errors.New(
	"GetAvailableProductsQuery must be created via NewGetAvailableProductsQuery constructor",
)

// GetAvailableProductsQuery retrieves the products vendors can order right
// now: listed by their supplier and with stock remaining. Optionally narrowed
// to a category.
type GetAvailableProductsQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewGetAvailableProductsQuery creates a query for the vendor-facing catalog.
// category is optional; empty means all categories.
func NewGetAvailableProductsQuery(category string) GetAvailableProductsQuery {
	return GetAvailableProductsQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableProductsQueryIsNotConstructed)
}

// Category returns the optional category filter, empty meaning all.
func (q GetAvailableProductsQuery) Category() string {
	return q.category
}

// ProductResponse is one catalog entry in a product listing.
type ProductResponse struct {
	ID          kernel.UUID
	SupplierID  kernel.UUID
	Name        string
	Description string
	Category    string
	Price       float64
	StockQty    float64
	Unit        string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
