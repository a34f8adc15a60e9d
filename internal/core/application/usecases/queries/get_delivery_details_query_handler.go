package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryDetailsQueryHandler loads one delivery run with its order lines
// and computes distance and ETA for each leg whose coordinates are known.
type GetDeliveryDetailsQueryHandler struct {
	db           *gorm.DB
	etaEstimator services.EtaEstimator
}

// NewGetDeliveryDetailsQueryHandler creates a handler for delivery detail
// lookups.
func NewGetDeliveryDetailsQueryHandler(db *gorm.DB, etaEstimator services.EtaEstimator) GetDeliveryDetailsQueryHandler {
	return GetDeliveryDetailsQueryHandler{db: db, etaEstimator: etaEstimator}
}

// Handle executes the query. Returns an ObjectNotFoundError when the delivery
// does not exist.
func (h GetDeliveryDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryDetailsQuery,
) (GetDeliveryDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryDetailsQueryResponse{}, err
	}

	var (
		id, orderID, agentID           uuid.UUID
		agentLat, agentLng             sql.NullFloat64
		pickupLat, pickupLng           sql.NullFloat64
		deliveryLat, deliveryLng       sql.NullFloat64
		estimated, actual              sql.NullTime
		proofOfDelivery, deliveryNotes sql.NullString
		resp                           GetDeliveryDetailsQueryResponse
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			d.agent_id,
			d.status,
			d.pickup_address,
			d.delivery_address,
			o.contact_phone,
			o.total_amount,
			d.agent_lat, d.agent_lng,
			d.pickup_lat, d.pickup_lng,
			d.delivery_lat, d.delivery_lng,
			d.proof_of_delivery,
			d.delivery_notes,
			d.estimated_delivery_time,
			d.actual_delivery_time,
			d.created_at,
			d.updated_at
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE d.id = ?
	`, query.DeliveryID().Bytes()).Row()

	err := row.Scan(
		&id, &orderID, &agentID, &resp.Status,
		&resp.PickupAddress, &resp.DeliveryAddress,
		&resp.ContactPhone, &resp.OrderTotalAmount,
		&agentLat, &agentLng,
		&pickupLat, &pickupLng,
		&deliveryLat, &deliveryLng,
		&proofOfDelivery, &deliveryNotes,
		&estimated, &actual,
		&resp.CreatedAt, &resp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetDeliveryDetailsQueryResponse{}, errs.NewObjectNotFoundError(
				"deliveryId", query.DeliveryID().String())
		}
		return GetDeliveryDetailsQueryResponse{}, err
	}

	if resp.DeliveryID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetDeliveryDetailsQueryResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return GetDeliveryDetailsQueryResponse{}, err
	}
	if resp.AgentID, err = kernel.UUIDFromBytes(agentID[:]); err != nil {
		return GetDeliveryDetailsQueryResponse{}, err
	}
	resp.ProofOfDelivery = proofOfDelivery.String
	resp.DeliveryNotes = deliveryNotes.String
	if estimated.Valid {
		t := estimated.Time
		resp.EstimatedDeliveryTime = &t
	}
	if actual.Valid {
		t := actual.Time
		resp.ActualDeliveryTime = &t
	}

	resp.Legs, err = h.buildLegs(
		geoPointFromNullable(agentLat, agentLng),
		geoPointFromNullable(pickupLat, pickupLng),
		geoPointFromNullable(deliveryLat, deliveryLng),
	)
	if err != nil {
		return GetDeliveryDetailsQueryResponse{}, err
	}

	orders, err := fetchOrders(ctx, h.db, "o.id = ?", orderID)
	if err != nil {
		return GetDeliveryDetailsQueryResponse{}, err
	}
	if len(orders) > 0 {
		resp.Items = orders[0].Items
	}

	return resp, nil
}

func (h GetDeliveryDetailsQueryHandler) buildLegs(agent, pickup, dropoff *kernel.GeoPoint) ([]DeliveryLegResponse, error) {
	legs := make([]DeliveryLegResponse, 0, 2)

	type legInput struct {
		from, to *kernel.GeoPoint
		names    [2]string
	}
	for _, leg := range []legInput{
		{agent, pickup, [2]string{"agent", "pickup"}},
		{pickup, dropoff, [2]string{"pickup", "dropoff"}},
	} {
		if leg.from == nil || leg.to == nil {
			continue
		}

		distance, err := leg.from.DistanceTo(*leg.to)
		if err != nil {
			return nil, err
		}
		eta, err := h.etaEstimator.MinutesForDistance(distance)
		if err != nil {
			return nil, err
		}

		legs = append(legs, DeliveryLegResponse{
			From:           leg.names[0],
			To:             leg.names[1],
			DistanceMeters: distance,
			EtaMinutes:     eta,
		})
	}

	return legs, nil
}

// geoPointFromNullable converts a nullable coordinate pair into a GeoPoint,
// returning nil when either component is missing or the pair is invalid.
func geoPointFromNullable(lat, lng sql.NullFloat64) *kernel.GeoPoint {
	if !lat.Valid || !lng.Valid {
		return nil
	}
	point, err := kernel.NewGeoPoint(lat.Float64, lng.Float64)
	if err != nil {
		return nil
	}
	return &point
}
