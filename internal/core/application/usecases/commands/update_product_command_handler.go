package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// UpdateProductCommandHandler edits a supplier's catalog entry. Edits are
// restricted to the owning supplier.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for catalog edits.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog edit command.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	if err = aggregate.Update(
		cmd.Name(), cmd.Description(), cmd.Category(), cmd.Price(), cmd.Unit(),
	); err != nil {
		return err
	}

	if cmd.StockQty() != nil {
		if err = aggregate.Restock(*cmd.StockQty()); err != nil {
			return err
		}
	}
	if cmd.IsAvailable() != nil {
		aggregate.SetAvailability(*cmd.IsAvailable())
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
