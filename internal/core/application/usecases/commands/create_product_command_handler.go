package commands

import (
	"context"

	"marketplace/internal/core/domain/model/product"
)

// CreateProductCommandHandler adds a new product to the supplier's catalog.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for catalog additions.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog addition command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := product.NewProduct(
		cmd.ProductID(), cmd.SupplierID(),
		cmd.Name(), cmd.Description(), cmd.Category(),
		cmd.Price(), cmd.StockQty(), cmd.Unit(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
