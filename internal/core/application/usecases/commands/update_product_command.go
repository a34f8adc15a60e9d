package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a supplier editing a catalog entry. Catalog
// attributes are replaced wholesale; stock and availability are optional and
// only touched when provided.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	supplierID  kernel.UUID
	name        string
	description string
	category    string
	price       float64
	unit        product.Unit

	stockQty    *float64
	isAvailable *bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to edit a catalog entry.
// stockQty and isAvailable are optional; nil leaves the current value intact.
func NewUpdateProductCommand(
	productID kernel.UUID,
	supplierID kernel.UUID,
	name string,
	description string,
	category string,
	price float64,
	unit product.Unit,
	stockQty *float64,
	isAvailable *bool,
) (UpdateProductCommand, error) {
	command := UpdateProductCommand{
		description: description,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setSupplierID(supplierID),
		command.setName(name),
		command.setCategory(category),
		command.setPrice(price),
		command.setUnit(unit),
		command.setStockQty(stockQty),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the target product's identifier.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// SupplierID returns the identifier of the supplier making the edit.
func (c UpdateProductCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Name returns the new product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new product description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// Category returns the new catalog category.
func (c UpdateProductCommand) Category() string {
	return c.category
}

// Price returns the new per-unit price.
func (c UpdateProductCommand) Price() float64 {
	return c.price
}

// Unit returns the new measurement unit.
func (c UpdateProductCommand) Unit() product.Unit {
	return c.unit
}

// StockQty returns the absolute stock level to set, or nil to keep it.
func (c UpdateProductCommand) StockQty() *float64 {
	return c.stockQty
}

// IsAvailable returns the listing flag to set, or nil to keep it.
func (c UpdateProductCommand) IsAvailable() *bool {
	return c.isAvailable
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplierId", err)
	}

	c.supplierID = supplierID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}

func (c *UpdateProductCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *UpdateProductCommand) setUnit(unit product.Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}

	c.unit = unit
	return nil
}

func (c *UpdateProductCommand) setStockQty(stockQty *float64) error {
	if stockQty == nil {
		return nil
	}
	if *stockQty < 0 {
		return errs.NewValueIsInvalidError("stockQty")
	}

	c.stockQty = stockQty
	return nil
}
