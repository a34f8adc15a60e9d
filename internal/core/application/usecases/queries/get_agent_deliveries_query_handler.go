package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgentDeliveriesQueryHandler lists an agent's delivery runs joined with
// their orders, newest first.
type GetAgentDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentDeliveriesQueryHandler creates a handler for agent run listings.
func NewGetAgentDeliveriesQueryHandler(db *gorm.DB) GetAgentDeliveriesQueryHandler {
	return GetAgentDeliveriesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAgentDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAgentDeliveriesQuery,
) ([]GetAgentDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "d.agent_id = ?"
	args := []any{query.AgentID().Bytes()}
	if query.Status() != "" {
		where += " AND d.status = ?"
		args = append(args, query.Status())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			d.status,
			d.pickup_address,
			d.delivery_address,
			o.contact_phone,
			o.total_amount,
			d.estimated_delivery_time,
			d.actual_delivery_time,
			d.created_at
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE `+where+`
		ORDER BY d.created_at DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]GetAgentDeliveriesQueryResponse, 0)

	for rows.Next() {
		var (
			id, orderID       uuid.UUID
			estimated, actual sql.NullTime
			resp              GetAgentDeliveriesQueryResponse
		)

		err = rows.Scan(
			&id, &orderID, &resp.Status,
			&resp.PickupAddress, &resp.DeliveryAddress,
			&resp.ContactPhone, &resp.OrderTotalAmount,
			&estimated, &actual, &resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.DeliveryID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if estimated.Valid {
			t := estimated.Time
			resp.EstimatedDeliveryTime = &t
		}
		if actual.Valid {
			t := actual.Time
			resp.ActualDeliveryTime = &t
		}

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
