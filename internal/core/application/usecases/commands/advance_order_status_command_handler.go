package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler moves an order along its lifecycle on
// behalf of the supplier. Illegal transitions are rejected by the aggregate
// and surface as InvalidTransitionError.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory     OrderUoWFactory
	eventPublisher ports.OrderEventPublisher
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status advances.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	eventPublisher ports.OrderEventPublisher,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// Handle processes the status advance command.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AdvanceTo(cmd.NextStatus()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.eventPublisher.PublishOrderChanged(ctx, aggregate)

	return nil
}
