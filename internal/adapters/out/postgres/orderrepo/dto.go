// Package orderrepo persists order aggregates with GORM. Orders and their line
// items live in separate tables; items are written once with the order and
// never mutated afterwards, matching the price-snapshot semantics of the
// domain model.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate. Status is stored as its
// wire string so read-side SQL can filter on it directly.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VendorID        uuid.UUID  `gorm:"type:uuid;index"`
	SupplierID      uuid.UUID  `gorm:"type:uuid;index"`
	AgentID         *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"index"`
	TotalAmount     float64
	DeliveryAddress string
	PickupAddress   string
	ContactPhone    string
	Notes           string
	PickupLat       *float64
	PickupLng       *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line. The (order_id, product_id) pair is the primary
// key; a product appears at most once per order.
type ItemDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductName string
	Quantity    float64
	UnitPrice   float64
	LineTotal   float64
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := aggregate.AgentID(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	var pickupLat, pickupLng *float64
	if loc := aggregate.PickupLocation(); loc != nil {
		lat, lng := loc.Lat(), loc.Lon()
		pickupLat, pickupLng = &lat, &lng
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			LineTotal:   item.LineTotal(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		VendorID:        aggregate.VendorID().Bytes(),
		SupplierID:      aggregate.SupplierID().Bytes(),
		AgentID:         agentID,
		Status:          aggregate.Status().String(),
		TotalAmount:     aggregate.TotalAmount(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		PickupAddress:   aggregate.PickupAddress(),
		ContactPhone:    aggregate.ContactPhone(),
		Notes:           aggregate.Notes(),
		PickupLat:       pickupLat,
		PickupLng:       pickupLng,
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Items:           items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}

		agentID = &aID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var pickupLocation *kernel.GeoPoint
	if dto.PickupLat != nil && dto.PickupLng != nil {
		loc, locErr := kernel.NewGeoPoint(*dto.PickupLat, *dto.PickupLng)
		if locErr != nil {
			return nil, locErr
		}

		pickupLocation = &loc
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(
			productID, itemDTO.ProductName,
			itemDTO.Quantity, itemDTO.UnitPrice, itemDTO.LineTotal,
		)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		id, vendorID, supplierID, items,
		dto.TotalAmount, status, agentID,
		dto.DeliveryAddress, dto.ContactPhone, dto.PickupAddress,
		pickupLocation, dto.Notes,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
