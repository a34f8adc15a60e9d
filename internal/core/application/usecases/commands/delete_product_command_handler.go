package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// DeleteProductCommandHandler removes a supplier's catalog entry. Removal is
// restricted to the owning supplier; placed orders keep their snapshotted
// names and prices.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for catalog removals.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog removal command.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if !aggregate.SupplierID().IsEqual(cmd.SupplierID()) {
		return errs.NewObjectNotFoundError("productId", cmd.ProductID().String())
	}

	if err = productRepo.Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
