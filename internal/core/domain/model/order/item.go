package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an order line: a product reference with the quantity ordered and the
// unit price snapshotted at order creation. The line total is derived once at
// construction, so later product price changes never affect a placed order.
type Item struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	productName string
	quantity    float64
	unitPrice   float64
	lineTotal   float64

	guard guard.ConstructorGuard
}

// NewItem creates an order line. Quantity and unit price must be positive;
// the line total is quantity * unitPrice.
func NewItem(productID kernel.UUID, productName string, quantity, unitPrice float64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	item.lineTotal = item.quantity * item.unitPrice
	return item, nil
}

// RestoreItem reconstructs a line from persistence, keeping the stored line
// total rather than recomputing it.
func RestoreItem(productID kernel.UUID, productName string, quantity, unitPrice, lineTotal float64) (Item, error) {
	item, err := NewItem(productID, productName, quantity, unitPrice)
	if err != nil {
		return Item{}, err
	}

	item.lineTotal = lineTotal
	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name captured at order time.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity in the product's unit.
func (i Item) Quantity() float64 {
	return i.quantity
}

// UnitPrice returns the per-unit price snapshotted at order creation.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// LineTotal returns quantity * unitPrice as computed at order creation.
func (i Item) LineTotal() float64 {
	return i.lineTotal
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setProductName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = name
	return nil
}

func (i *Item) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice <= 0 {
		return errs.NewValueIsInvalidError("unitPrice")
	}
	i.unitPrice = unitPrice
	return nil
}
