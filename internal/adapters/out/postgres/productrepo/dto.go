// Package productrepo persists product aggregates with GORM. It maps between
// the domain model and the products table used by the catalog queries.
package productrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO is the database row for a catalog product.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SupplierID  uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string
	Category    string `gorm:"index"`
	Price       float64
	StockQty    float64
	Unit        string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		SupplierID:  aggregate.SupplierID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Category:    aggregate.Category(),
		Price:       aggregate.Price(),
		StockQty:    aggregate.StockQty(),
		Unit:        aggregate.Unit().String(),
		IsAvailable: aggregate.IsAvailable(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	unit, err := product.UnitFromString(dto.Unit)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, supplierID,
		dto.Name, dto.Description, dto.Category,
		dto.Price, dto.StockQty, unit, dto.IsAvailable,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
