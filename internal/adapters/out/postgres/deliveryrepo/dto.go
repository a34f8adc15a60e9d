// Package deliveryrepo persists delivery aggregates with GORM.
package deliveryrepo

import (
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the database row for a courier run. The three coordinate
// pairs are nullable: the agent position is only known when the agent reported
// one at acceptance, and the address coordinates may be geocoded later by the
// backfill job.
type DeliveryDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	AgentID               uuid.UUID `gorm:"type:uuid;index"`
	Status                string    `gorm:"index"`
	PickupAddress         string
	DeliveryAddress       string
	AgentLat              *float64
	AgentLng              *float64
	PickupLat             *float64
	PickupLng             *float64
	DeliveryLat           *float64
	DeliveryLng           *float64
	ProofOfDelivery       string
	DeliveryNotes         string
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	agentLat, agentLng := coords(aggregate.AgentLocation())
	pickupLat, pickupLng := coords(aggregate.PickupLocation())
	deliveryLat, deliveryLng := coords(aggregate.DeliveryLocation())

	return DeliveryDTO{
		ID:                    aggregate.ID().Bytes(),
		OrderID:               aggregate.OrderID().Bytes(),
		AgentID:               aggregate.AgentID().Bytes(),
		Status:                aggregate.Status().String(),
		PickupAddress:         aggregate.PickupAddress(),
		DeliveryAddress:       aggregate.DeliveryAddress(),
		AgentLat:              agentLat,
		AgentLng:              agentLng,
		PickupLat:             pickupLat,
		PickupLng:             pickupLng,
		DeliveryLat:           deliveryLat,
		DeliveryLng:           deliveryLng,
		ProofOfDelivery:       aggregate.ProofOfDelivery(),
		DeliveryNotes:         aggregate.DeliveryNotes(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		ActualDeliveryTime:    aggregate.ActualDeliveryTime(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	agentLocation, err := geoPoint(dto.AgentLat, dto.AgentLng)
	if err != nil {
		return nil, err
	}

	pickupLocation, err := geoPoint(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}

	deliveryLocation, err := geoPoint(dto.DeliveryLat, dto.DeliveryLng)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, orderID, agentID, status,
		dto.PickupAddress, dto.DeliveryAddress,
		agentLocation, pickupLocation, deliveryLocation,
		dto.ProofOfDelivery, dto.DeliveryNotes,
		dto.EstimatedDeliveryTime, dto.ActualDeliveryTime,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func coords(location *kernel.GeoPoint) (*float64, *float64) {
	if location == nil {
		return nil, nil
	}

	lat, lng := location.Lat(), location.Lon()
	return &lat, &lng
}

func geoPoint(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil //nolint:nilnil //absence of a coordinate is not an error
	}

	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}

	return &point, nil
}
