package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"Onions", "Fresh red onions", "vegetables",
		40, 100, product.UnitKg,
	)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	prod := catalogProduct(t, supplierID, 100)

	newStock := 50.0
	delisted := false
	cmd, err := commands.NewUpdateProductCommand(
		prod.ID(), supplierID,
		"Shallots", "Small shallots", "vegetables",
		55, product.UnitKg,
		&newStock, &delisted,
	)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, prod.ID()).Return(prod, nil).Once(),
		productRepo.On("Update", mock.Anything, prod).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Shallots", prod.Name())
	assert.Equal(t, 50.0, prod.StockQty())
	assert.False(t, prod.IsAvailable())
}

func TestUpdateProductCommandHandler_Handle_ForeignSupplier(t *testing.T) {
	ctx := t.Context()
	prod := catalogProduct(t, kernel.NewUUID(), 100)

	cmd, err := commands.NewUpdateProductCommand(
		prod.ID(), kernel.NewUUID(),
		"Shallots", "", "vegetables", 55, product.UnitKg,
		nil, nil,
	)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, prod.ID()).Return(prod, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, "Onions", prod.Name())
	productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	prod := catalogProduct(t, supplierID, 100)

	cmd, err := commands.NewDeleteProductCommand(prod.ID(), supplierID)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, prod.ID()).Return(prod, nil).Once(),
		productRepo.On("Delete", mock.Anything, prod.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteProductCommandHandler_Handle_ForeignSupplier(t *testing.T) {
	ctx := t.Context()
	prod := catalogProduct(t, kernel.NewUUID(), 100)

	cmd, err := commands.NewDeleteProductCommand(prod.ID(), kernel.NewUUID())
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, prod.ID()).Return(prod, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	productRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
