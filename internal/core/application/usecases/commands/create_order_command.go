package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderItem is one requested order line: a product and a quantity in
// the product's unit. Names and prices are resolved from the catalog inside
// the handler, never trusted from the caller.
type CreateOrderItem struct {
	ProductID kernel.UUID
	Quantity  float64
}

// CreateOrderCommand represents a vendor's request to place an order with a
// supplier.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	vendorID   kernel.UUID
	supplierID kernel.UUID

	items []CreateOrderItem

	deliveryAddress string
	contactPhone    string
	pickupAddress   string
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. The supplier may
// be the configured default when the caller does not name one; pickupAddress
// and notes are optional.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	vendorID kernel.UUID,
	supplierID kernel.UUID,
	items []CreateOrderItem,
	deliveryAddress string,
	contactPhone string,
	pickupAddress string,
	notes string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		pickupAddress: pickupAddress,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setVendorID(vendorID),
		orderCommand.setSupplierID(supplierID),
		orderCommand.setItems(items),
		orderCommand.setDeliveryAddress(deliveryAddress),
		orderCommand.setContactPhone(contactPhone),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VendorID returns the ordering vendor's identifier.
func (c CreateOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// SupplierID returns the fulfilling supplier's identifier.
func (c CreateOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	return c.items
}

// DeliveryAddress returns the vendor's drop-off address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// ContactPhone returns the vendor's contact number.
func (c CreateOrderCommand) ContactPhone() string {
	return c.contactPhone
}

// PickupAddress returns the optional supplier-side pickup address.
func (c CreateOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// Notes returns optional free-form order notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vendorId", err)
	}

	c.vendorID = vendorID
	return nil
}

func (c *CreateOrderCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplierId", err)
	}

	c.supplierID = supplierID
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("items.productId", err)
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidError("items.quantity")
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setContactPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("contactPhone")
	}

	c.contactPhone = phone
	return nil
}
