package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Resolves every requested line against the catalog, reserves stock, and
// persists the order in "pending" status within one transaction.
type CreateOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	eventPublisher ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	eventPublisher ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

// Handle processes the order placement command.
//
// For every requested line the product is loaded, checked against the
// supplier and its availability, and its stock is reserved with a conditional
// update. Prices and names are snapshotted from the catalog at this moment.
// Any failure rolls back the whole transaction, including already reserved
// lines.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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
	items := make([]order.Item, 0, len(cmd.Items()))

	for _, line := range cmd.Items() {
		product, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return err
		}

		if !product.SupplierID().IsEqual(cmd.SupplierID()) {
			return errs.NewObjectNotFoundError("productId", line.ProductID.String())
		}
		if !product.IsOrderable() {
			return errs.NewInsufficientStockError(product.ID().String(), line.Quantity, product.StockQty())
		}

		reserved, err := productRepo.ReserveStock(ctx, product.ID(), line.Quantity)
		if err != nil {
			return err
		}
		if !reserved {
			return errs.NewInsufficientStockError(product.ID().String(), line.Quantity, product.StockQty())
		}

		item, err := order.NewItem(product.ID(), product.Name(), line.Quantity, product.Price())
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.VendorID(), cmd.SupplierID(),
		items,
		cmd.DeliveryAddress(), cmd.ContactPhone(), cmd.PickupAddress(),
		nil,
		cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The order is committed; a publish failure is logged by the producer
	// and must not fail the request.
	_ = h.eventPublisher.PublishOrderChanged(ctx, aggregate)

	return nil
}
