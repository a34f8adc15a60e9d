package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAvailableProductsQueryHandler lists orderable catalog entries for
// vendors, sorted by category then name.
type GetAvailableProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableProductsQueryHandler creates a handler for the vendor-facing
// catalog.
func NewGetAvailableProductsQueryHandler(db *gorm.DB) GetAvailableProductsQueryHandler {
	return GetAvailableProductsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAvailableProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "is_available AND stock_qty > 0"
	args := []any{}
	if query.Category() != "" {
		where += " AND category = ?"
		args = append(args, query.Category())
	}

	return fetchProducts(ctx, h.db, where, "category, name", args...)
}
