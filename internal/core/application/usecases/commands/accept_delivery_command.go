package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand represents a delivery agent claiming a ready order.
// The agent may report their current coordinate for ETA estimation.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	orderID       kernel.UUID
	agentID       kernel.UUID
	agentLocation *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command to claim an order for delivery.
// agentLocation is optional.
func NewAcceptDeliveryCommand(
	deliveryID kernel.UUID,
	orderID kernel.UUID,
	agentID kernel.UUID,
	agentLocation *kernel.GeoPoint,
) (AcceptDeliveryCommand, error) {
	command := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setOrderID(orderID),
		command.setAgentID(agentID),
		command.setAgentLocation(agentLocation),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier for the new delivery.
func (c AcceptDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the claimed order's identifier.
func (c AcceptDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the claiming agent's identifier.
func (c AcceptDeliveryCommand) AgentID() kernel.UUID {
	return c.agentID
}

// AgentLocation returns the agent's reported coordinate, or nil.
func (c AcceptDeliveryCommand) AgentLocation() *kernel.GeoPoint {
	return c.agentLocation
}

func (c *AcceptDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AcceptDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptDeliveryCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *AcceptDeliveryCommand) setAgentLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	c.agentLocation = location
	return nil
}
