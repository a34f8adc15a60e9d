package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a courier progress report: picked up,
// out for delivery, delivered (with proof) or failed (with a reason).
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID      kernel.UUID
	nextStatus      delivery.Status
	proofOfDelivery string
	notes           string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to report delivery
// progress. proofOfDelivery and notes are optional.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.UUID,
	nextStatus delivery.Status,
	proofOfDelivery string,
	notes string,
) (UpdateDeliveryStatusCommand, error) {
	command := UpdateDeliveryStatusCommand{
		proofOfDelivery: proofOfDelivery,
		notes:           notes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDeliveryID(deliveryID),
		command.setNextStatus(nextStatus),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the target delivery's identifier.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// NextStatus returns the reported status.
func (c UpdateDeliveryStatusCommand) NextStatus() delivery.Status {
	return c.nextStatus
}

// ProofOfDelivery returns the courier's proof reference, if any.
func (c UpdateDeliveryStatusCommand) ProofOfDelivery() string {
	return c.proofOfDelivery
}

// Notes returns the courier's notes or failure reason, if any.
func (c UpdateDeliveryStatusCommand) Notes() string {
	return c.notes
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateDeliveryStatusCommand) setNextStatus(nextStatus delivery.Status) error {
	if err := nextStatus.Validate(); err != nil {
		return err
	}

	c.nextStatus = nextStatus
	return nil
}
