package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a supplier adding a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	supplierID  kernel.UUID
	name        string
	description string
	category    string
	price       float64
	stockQty    float64
	unit        product.Unit

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog entry.
// description is optional.
func NewCreateProductCommand(
	productID kernel.UUID,
	supplierID kernel.UUID,
	name string,
	description string,
	category string,
	price float64,
	stockQty float64,
	unit product.Unit,
) (CreateProductCommand, error) {
	command := CreateProductCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setSupplierID(supplierID),
		command.setName(name),
		command.setCategory(category),
		command.setPrice(price),
		command.setStockQty(stockQty),
		command.setUnit(unit),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// SupplierID returns the owning supplier's identifier.
func (c CreateProductCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the optional product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Category returns the catalog category.
func (c CreateProductCommand) Category() string {
	return c.category
}

// Price returns the per-unit price.
func (c CreateProductCommand) Price() float64 {
	return c.price
}

// StockQty returns the initial stock level.
func (c CreateProductCommand) StockQty() float64 {
	return c.stockQty
}

// Unit returns the measurement unit.
func (c CreateProductCommand) Unit() product.Unit {
	return c.unit
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplierId", err)
	}

	c.supplierID = supplierID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}

func (c *CreateProductCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setStockQty(stockQty float64) error {
	if stockQty < 0 {
		return errs.NewValueIsInvalidError("stockQty")
	}

	c.stockQty = stockQty
	return nil
}

func (c *CreateProductCommand) setUnit(unit product.Unit) error {
	if err := unit.Validate(); err != nil {
		return err
	}

	c.unit = unit
	return nil
}
