package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingOrder(t)

	cmd, err := commands.NewAdvanceOrderStatusCommand(aggregate.ID(), order.Confirmed)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, aggregate).Return(nil).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, aggregate.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingOrder(t)

	cmd, err := commands.NewAdvanceOrderStatusCommand(aggregate.ID(), order.Delivered)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory, new(MockOrderEventPublisher))
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Pending, aggregate.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestNewAdvanceOrderStatusCommand_RejectsInvalidStatus(t *testing.T) {
	_, err := commands.NewAdvanceOrderStatusCommand(pendingOrder(t).ID(), order.Unknown)
	require.Error(t, err)
}
