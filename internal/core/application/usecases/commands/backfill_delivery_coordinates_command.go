package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrBackfillDeliveryCoordinatesCommandIsNotConstructed = errors.New(
	"BackfillDeliveryCoordinatesCommand must be created via NewBackfillDeliveryCoordinatesCommand constructor",
)

// BackfillDeliveryCoordinatesCommand represents a batch geocoding pass over
// deliveries whose pickup or drop-off coordinate is still unknown.
type BackfillDeliveryCoordinatesCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewBackfillDeliveryCoordinatesCommand creates a command to geocode up to
// batchSize deliveries.
func NewBackfillDeliveryCoordinatesCommand(batchSize int) (BackfillDeliveryCoordinatesCommand, error) {
	command := BackfillDeliveryCoordinatesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setBatchSize(batchSize); err != nil {
		return BackfillDeliveryCoordinatesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c BackfillDeliveryCoordinatesCommand) Validate() error {
	return c.guard.Validate(ErrBackfillDeliveryCoordinatesCommandIsNotConstructed)
}

// BatchSize returns the maximum number of deliveries to process.
func (c BackfillDeliveryCoordinatesCommand) BatchSize() int {
	return c.batchSize
}

func (c *BackfillDeliveryCoordinatesCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return errs.NewValueIsInvalidError("batchSize")
	}

	c.batchSize = batchSize
	return nil
}
