package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetVendorOrdersQueryHandler lists a vendor's orders with their line items,
// newest first.
type GetVendorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorOrdersQueryHandler creates a handler for vendor order listings.
func NewGetVendorOrdersQueryHandler(db *gorm.DB) GetVendorOrdersQueryHandler {
	return GetVendorOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetVendorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVendorOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where, args := statusFilter("o.vendor_id = ?", []any{query.VendorID().Bytes()}, query.Status())
	return fetchOrders(ctx, h.db, where, args...)
}
