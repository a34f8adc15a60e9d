package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// AcceptDeliveryCommandHandler lets a delivery agent claim a ready order.
//
// The claim itself is a conditional update on the order row, so when several
// agents race for the same order exactly one wins and the rest get an
// AlreadyAssignedError. The winning claim creates the delivery aggregate in
// the same transaction.
type AcceptDeliveryCommandHandler struct {
	uowFactory     DeliveryUoWFactory
	etaEstimator   services.EtaEstimator
	eventPublisher ports.OrderEventPublisher
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery acceptance.
func NewAcceptDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	etaEstimator services.EtaEstimator,
	eventPublisher ports.OrderEventPublisher,
) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory:     uowFactory,
		etaEstimator:   etaEstimator,
		eventPublisher: eventPublisher,
	}
}

// Handle processes the acceptance command.
func (h *AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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

	// Domain-level validation first for a precise error, then the
	// conditional update to close the race against other agents.
	if err = aggregate.Assign(cmd.AgentID()); err != nil {
		return err
	}

	claimed, err := orderRepo.ClaimForAgent(ctx, cmd.OrderID(), cmd.AgentID())
	if err != nil {
		return err
	}
	if !claimed {
		return errs.NewAlreadyAssignedError(cmd.OrderID().String())
	}

	estimatedArrival, err := h.etaEstimator.EstimatedArrival(
		time.Now().UTC(),
		cmd.AgentLocation(), aggregate.PickupLocation(), nil,
	)
	if err != nil {
		return err
	}

	run, err := delivery.NewDelivery(
		cmd.DeliveryID(), cmd.OrderID(), cmd.AgentID(),
		aggregate.PickupAddress(), aggregate.DeliveryAddress(),
		cmd.AgentLocation(), aggregate.PickupLocation(), nil,
		estimatedArrival,
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, run); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.eventPublisher.PublishOrderChanged(ctx, aggregate)

	return nil
}
