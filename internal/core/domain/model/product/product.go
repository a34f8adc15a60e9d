package product

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product was not created through
// NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the aggregate root for a supplier's catalog entry. It owns the
// price, the stock level, and the availability flag that together decide
// whether vendors can order it.
//
// Invariants:
//   - price is positive
//   - stockQty is never negative
//   - unit is one of the defined measurement units
type Product struct {
	id         kernel.UUID
	supplierID kernel.UUID

	name        string
	description string
	category    string

	price    float64
	stockQty float64
	unit     Unit

	isAvailable bool

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewProduct creates an available product with the given stock level.
func NewProduct(
	id kernel.UUID,
	supplierID kernel.UUID,
	name string,
	description string,
	category string,
	price float64,
	stockQty float64,
	unit Unit,
) (*Product, error) {
	now := time.Now().UTC()
	product := &Product{
		description: description,
		isAvailable: true,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setSupplierID(supplierID),
		product.setName(name),
		product.setCategory(category),
		product.setPrice(price),
		product.setStockQty(stockQty),
		product.setUnit(unit),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	supplierID kernel.UUID,
	name string,
	description string,
	category string,
	price float64,
	stockQty float64,
	unit Unit,
	isAvailable bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Product, error) {
	product, err := NewProduct(id, supplierID, name, description, category, price, stockQty, unit)
	if err != nil {
		return nil, err
	}

	product.isAvailable = isAvailable
	product.createdAt = createdAt
	product.updatedAt = updatedAt
	return product, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by identifier.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// SupplierID returns the owning supplier's identifier.
func (p *Product) SupplierID() kernel.UUID {
	return p.supplierID
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the free-form product description.
func (p *Product) Description() string {
	return p.description
}

// Category returns the catalog category.
func (p *Product) Category() string {
	return p.category
}

// Price returns the per-unit price.
func (p *Product) Price() float64 {
	return p.price
}

// StockQty returns the remaining stock in the product's unit.
func (p *Product) StockQty() float64 {
	return p.stockQty
}

// Unit returns the measurement unit the product is sold in.
func (p *Product) Unit() Unit {
	return p.unit
}

// IsAvailable reports whether the supplier currently lists the product.
func (p *Product) IsAvailable() bool {
	return p.isAvailable
}

// IsOrderable reports whether a vendor can order the product right now:
// it must be listed and have stock left.
func (p *Product) IsOrderable() bool {
	return p.isAvailable && p.stockQty > 0
}

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last-mutation timestamp.
func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// Update replaces the catalog attributes of the product. Stock and
// availability are managed separately.
func (p *Product) Update(name, description, category string, price float64, unit Unit) error {
	if err := errors.Join(
		p.setName(name),
		p.setCategory(category),
		p.setPrice(price),
		p.setUnit(unit),
	); err != nil {
		return err
	}

	p.description = description
	p.touch()
	return nil
}

// SetAvailability lists or delists the product without touching stock.
func (p *Product) SetAvailability(available bool) {
	p.isAvailable = available
	p.touch()
}

// ReduceStock removes quantity from stock for an order line. Fails with an
// InsufficientStockError when the remaining stock does not cover the request.
//
// The persistence layer additionally enforces this as a conditional update so
// two racing orders cannot both consume the same stock.
func (p *Product) ReduceStock(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	if quantity > p.stockQty {
		return errs.NewInsufficientStockError(p.id.String(), quantity, p.stockQty)
	}

	p.stockQty -= quantity
	p.touch()
	return nil
}

// RestoreStock returns quantity to stock after an order is cancelled.
func (p *Product) RestoreStock(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	p.stockQty += quantity
	p.touch()
	return nil
}

// Restock sets the stock level to an absolute quantity.
func (p *Product) Restock(quantity float64) error {
	if err := p.setStockQty(quantity); err != nil {
		return err
	}

	p.touch()
	return nil
}

func (p *Product) touch() {
	p.updatedAt = time.Now().UTC()
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplierId", err)
	}
	p.supplierID = supplierID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}
	p.price = price
	return nil
}

func (p *Product) setStockQty(stockQty float64) error {
	if stockQty < 0 {
		return errs.NewValueIsInvalidError("stockQty")
	}
	p.stockQty = stockQty
	return nil
}

func (p *Product) setUnit(unit Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}
	p.unit = unit
	return nil
}
