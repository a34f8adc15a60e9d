package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSupplierProductsQueryHandler lists a supplier's catalog entries, newest
// first, including delisted and out-of-stock products.
type GetSupplierProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetSupplierProductsQueryHandler creates a handler for supplier catalog
// listings.
func NewGetSupplierProductsQueryHandler(db *gorm.DB) GetSupplierProductsQueryHandler {
	return GetSupplierProductsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetSupplierProductsQueryHandler) Handle(
	ctx context.Context,
	query GetSupplierProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchProducts(ctx, h.db, "supplier_id = ?", "created_at DESC", query.SupplierID().Bytes())
}
