package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// CancelOrderCommandHandler abandons an order and returns its reserved stock
// to the catalog in the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	eventPublisher ports.OrderEventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	eventPublisher ports.OrderEventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// Handle processes the cancellation command. The aggregate rejects
// cancellation of terminal orders; stock is restored line by line.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	for _, item := range aggregate.Items() {
		if err = productRepo.ReleaseStock(ctx, item.ProductID(), item.Quantity()); err != nil {
			return err
		}
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
