package commands

import (
	"context"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// UpdateDeliveryStatusCommandHandler applies a courier progress report to the
// delivery and, on terminal reports, reconciles the carried order in the same
// transaction: delivered closes the order, failed marks it failed.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory     DeliveryUoWFactory
	eventPublisher ports.OrderEventPublisher
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for courier
// progress reports.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	eventPublisher ports.OrderEventPublisher,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// Handle processes the progress report.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	run, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = h.applyReport(run, cmd); err != nil {
		return err
	}

	if cmd.Notes() != "" && cmd.NextStatus() != delivery.Failed {
		run.AddNotes(cmd.Notes())
	}

	if err = deliveryRepo.Update(ctx, run); err != nil {
		return err
	}

	var aggregate *order.Order
	if cmd.NextStatus().IsTerminal() {
		aggregate, err = h.reconcileOrder(ctx, uow, run, cmd.NextStatus())
		if err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if aggregate != nil {
		_ = h.eventPublisher.PublishOrderChanged(ctx, aggregate)
	}

	return nil
}

func (h *UpdateDeliveryStatusCommandHandler) applyReport(
	run *delivery.Delivery,
	cmd UpdateDeliveryStatusCommand,
) error {
	switch cmd.NextStatus() {
	case delivery.PickedUp:
		return run.MarkPickedUp()
	case delivery.OutForDelivery:
		return run.MarkOutForDelivery()
	case delivery.Delivered:
		return run.MarkDelivered(cmd.ProofOfDelivery())
	case delivery.Failed:
		return run.MarkFailed(cmd.Notes())
	default:
		return errs.NewValueIsInvalidError("status")
	}
}

func (h *UpdateDeliveryStatusCommandHandler) reconcileOrder(
	ctx context.Context,
	uow DeliveryUoW,
	run *delivery.Delivery,
	outcome delivery.Status,
) (*order.Order, error) {
	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, run.OrderID())
	if err != nil {
		return nil, err
	}

	if outcome == delivery.Delivered {
		err = aggregate.MarkDelivered()
	} else {
		err = aggregate.MarkFailed()
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
