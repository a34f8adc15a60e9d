package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand represents a supplier-side request to move an
// order to its next lifecycle status (confirmed, ready_for_pickup).
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	nextStatus order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order's status.
func NewAdvanceOrderStatusCommand(orderID kernel.UUID, nextStatus order.Status) (AdvanceOrderStatusCommand, error) {
	command := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setNextStatus(nextStatus),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NextStatus returns the requested status.
func (c AdvanceOrderStatusCommand) NextStatus() order.Status {
	return c.nextStatus
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStatusCommand) setNextStatus(nextStatus order.Status) error {
	if err := nextStatus.Validate(); err != nil {
		return err
	}

	c.nextStatus = nextStatus
	return nil
}
