package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDeliveriesQueryHandler lists claimable orders for delivery
// agents, optionally filtered by proximity to the agent's coordinate.
//
// The proximity filter runs in Go over the candidate rows: the candidate set
// is small (ready, unclaimed orders) and this keeps the SQL portable.
type GetAvailableDeliveriesQueryHandler struct {
	db           *gorm.DB
	etaEstimator services.EtaEstimator
}

// NewGetAvailableDeliveriesQueryHandler creates a handler for the agent feed.
func NewGetAvailableDeliveriesQueryHandler(db *gorm.DB, etaEstimator services.EtaEstimator) GetAvailableDeliveriesQueryHandler {
	return GetAvailableDeliveriesQueryHandler{db: db, etaEstimator: etaEstimator}
}

const availableDeliveriesSQL = `
		SELECT
			o.id,
			o.supplier_id,
			o.pickup_address,
			o.delivery_address,
			o.total_amount,
			o.pickup_lat,
			o.pickup_lng,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id) AS item_count
		FROM orders o
		WHERE o.status = 'ready_for_pickup' AND o.agent_id IS NULL
		ORDER BY o.created_at DESC
	`

// Handle executes the query. Results are ordered newest first.
func (h GetAvailableDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDeliveriesQuery,
) ([]GetAvailableDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(availableDeliveriesSQL).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]GetAvailableDeliveriesQueryResponse, 0)

	for rows.Next() {
		var (
			id, supplierID       uuid.UUID
			pickupLat, pickupLng sql.NullFloat64
			resp                 GetAvailableDeliveriesQueryResponse
		)

		err = rows.Scan(
			&id,
			&supplierID,
			&resp.PickupAddress,
			&resp.DeliveryAddress,
			&resp.TotalAmount,
			&pickupLat,
			&pickupLng,
			&resp.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		if resp.OrderID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.SupplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
			return nil, err
		}

		include, err := h.annotateProximity(&resp, query, pickupLat, pickupLng)
		if err != nil {
			return nil, err
		}
		if !include {
			continue
		}

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

// annotateProximity fills distance and ETA when both coordinates are known
// and decides whether the row passes the radius filter. Without an agent
// location every order is included; with one, orders whose pickup point has
// not been geocoded are excluded, since their distance cannot be judged.
func (h GetAvailableDeliveriesQueryHandler) annotateProximity(
	resp *GetAvailableDeliveriesQueryResponse,
	query GetAvailableDeliveriesQuery,
	pickupLat, pickupLng sql.NullFloat64,
) (bool, error) {
	if query.AgentLocation() == nil {
		return true, nil
	}
	if !pickupLat.Valid || !pickupLng.Valid {
		return false, nil
	}

	pickup, err := kernel.NewGeoPoint(pickupLat.Float64, pickupLng.Float64)
	if err != nil {
		return false, err
	}

	distance, err := query.AgentLocation().DistanceTo(pickup)
	if err != nil {
		return false, err
	}

	if query.RadiusMeters() > 0 && distance > query.RadiusMeters() {
		return false, nil
	}

	eta, err := h.etaEstimator.MinutesForDistance(distance)
	if err != nil {
		return false, err
	}

	resp.DistanceMeters = &distance
	resp.EtaMinutes = &eta
	return true, nil
}
