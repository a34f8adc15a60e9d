package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand represents a supplier removing a catalog entry.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to remove a catalog entry.
func NewDeleteProductCommand(productID, supplierID kernel.UUID) (DeleteProductCommand, error) {
	command := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setSupplierID(supplierID),
	); err != nil {
		return DeleteProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the target product's identifier.
func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// SupplierID returns the identifier of the supplier making the removal.
func (c DeleteProductCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

func (c *DeleteProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *DeleteProductCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplierId", err)
	}

	c.supplierID = supplierID
	return nil
}
