package commands

import (
	"context"

	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// BackfillDeliveryCoordinatesCommandHandler geocodes addresses of deliveries
// that were accepted before their coordinates were known. Geocoder failures
// for a single delivery skip that delivery rather than aborting the batch;
// the provider will be retried on the next run.
type BackfillDeliveryCoordinatesCommandHandler struct {
	uowFactory DeliveryUoWFactory
	geocoder   ports.Geocoder
}

// NewBackfillDeliveryCoordinatesCommandHandler creates a handler for the
// geocode backfill batch.
func NewBackfillDeliveryCoordinatesCommandHandler(
	uowFactory DeliveryUoWFactory,
	geocoder ports.Geocoder,
) BackfillDeliveryCoordinatesCommandHandler {
	return BackfillDeliveryCoordinatesCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
	}
}

// Handle processes one backfill batch and reports how many deliveries gained
// coordinates.
func (h *BackfillDeliveryCoordinatesCommandHandler) Handle(
	ctx context.Context,
	cmd BackfillDeliveryCoordinatesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	runs, err := deliveryRepo.GetAllMissingCoordinates(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, run := range runs {
		pickup, dropoff := h.resolve(ctx, run)
		if pickup == nil && dropoff == nil {
			continue
		}

		if err = run.BackfillCoordinates(pickup, dropoff); err != nil {
			return 0, err
		}
		if err = deliveryRepo.Update(ctx, run); err != nil {
			return 0, err
		}
		updated++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return updated, nil
}

func (h *BackfillDeliveryCoordinatesCommandHandler) resolve(
	ctx context.Context,
	run *delivery.Delivery,
) (pickup, dropoff *kernel.GeoPoint) {
	if run.PickupLocation() == nil {
		if point, err := h.geocoder.Geocode(ctx, run.PickupAddress()); err == nil {
			pickup = &point
		}
	}
	if run.DeliveryLocation() == nil {
		if point, err := h.geocoder.Geocode(ctx, run.DeliveryAddress()); err == nil {
			dropoff = &point
		}
	}
	return pickup, dropoff
}
