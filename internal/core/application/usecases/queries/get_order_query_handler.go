package queries

import (
	"context"

	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler loads one order with its line items.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := fetchOrders(ctx, h.db, "o.id = ?", query.OrderID().Bytes())
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	return orders[0], nil
}
