package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItemResponse is one order line in a listing.
type OrderItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    float64
	UnitPrice   float64
	LineTotal   float64
}

// OrderResponse is one order in a vendor or supplier listing.
type OrderResponse struct {
	ID              kernel.UUID
	VendorID        kernel.UUID
	SupplierID      kernel.UUID
	AgentID         *kernel.UUID
	Status          string
	TotalAmount     float64
	DeliveryAddress string
	PickupAddress   string
	ContactPhone    string
	Notes           string
	Items           []OrderItemResponse
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// fetchOrders reads orders matching the WHERE clause (orders aliased as "o"),
// newest first, and attaches their line items with a second query.
func fetchOrders(ctx context.Context, db *gorm.DB, where string, args ...any) ([]OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.vendor_id,
			o.supplier_id,
			o.agent_id,
			o.status,
			o.total_amount,
			o.delivery_address,
			o.pickup_address,
			o.contact_phone,
			o.notes,
			o.created_at,
			o.updated_at
		FROM orders o
		WHERE `+where+`
		ORDER BY o.created_at DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	index := make(map[kernel.UUID]int)

	for rows.Next() {
		var (
			id, vendorID, supplierID uuid.UUID
			agentID                  uuid.NullUUID
			resp                     OrderResponse
		)

		err = rows.Scan(
			&id, &vendorID, &supplierID, &agentID,
			&resp.Status, &resp.TotalAmount,
			&resp.DeliveryAddress, &resp.PickupAddress,
			&resp.ContactPhone, &resp.Notes,
			&resp.CreatedAt, &resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.VendorID, err = kernel.UUIDFromBytes(vendorID[:]); err != nil {
			return nil, err
		}
		if resp.SupplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
			return nil, err
		}
		if agentID.Valid {
			agent, idErr := kernel.UUIDFromBytes(agentID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.AgentID = &agent
		}

		resp.Items = make([]OrderItemResponse, 0)
		index[resp.ID] = len(orders)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	return attachItems(ctx, db, orders, index, where, args...)
}

func attachItems(
	ctx context.Context,
	db *gorm.DB,
	orders []OrderResponse,
	index map[kernel.UUID]int,
	where string,
	args ...any,
) ([]OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			i.product_id,
			i.product_name,
			i.quantity,
			i.unit_price,
			i.line_total
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE `+where+`
		ORDER BY i.order_id, i.product_name
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID, productID uuid.UUID
			item               OrderItemResponse
		)

		err = rows.Scan(
			&orderID, &productID,
			&item.ProductName, &item.Quantity, &item.UnitPrice, &item.LineTotal,
		)
		if err != nil {
			return nil, err
		}

		oid, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}

		if pos, ok := index[oid]; ok {
			orders[pos].Items = append(orders[pos].Items, item)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// statusFilter appends an optional status predicate to a base WHERE clause.
func statusFilter(where string, args []any, status string) (string, []any) {
	if status == "" {
		return where, args
	}
	return where + " AND o.status = ?", append(args, status)
}
