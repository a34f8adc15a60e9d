package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSupplierOrdersQueryHandler lists the orders placed with a supplier,
// newest first.
type GetSupplierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSupplierOrdersQueryHandler creates a handler for supplier order
// listings.
func NewGetSupplierOrdersQueryHandler(db *gorm.DB) GetSupplierOrdersQueryHandler {
	return GetSupplierOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetSupplierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSupplierOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args := statusFilter("o.supplier_id = ?", []any{query.SupplierID().Bytes()}, query.Status())
	return fetchOrders(ctx, h.db, where, args...)
}
