package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateDeliveryStatusCommandHandler_Handle_PickedUp(t *testing.T) {
	ctx := t.Context()
	run := assignedDelivery(t)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(run.ID(), delivery.PickedUp, "", "")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, run.ID()).Return(run, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, run).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, new(MockOrderEventPublisher))
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.PickedUp, run.Status())
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveredReconcilesOrder(t *testing.T) {
	ctx := t.Context()
	agentOrder := outForDeliveryOrder(t, kernel.NewUUID())
	run := outForDeliveryRun(t)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(run.ID(), delivery.Delivered, "photo-123", "")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, run.ID()).Return(run, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, run).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, run.OrderID()).Return(agentOrder, nil).Once(),
		orderRepo.On("Update", mock.Anything, agentOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, agentOrder).Return(nil).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Delivered, run.Status())
	assert.Equal(t, "photo-123", run.ProofOfDelivery())
	assert.NotNil(t, run.ActualDeliveryTime())
	assert.Equal(t, order.Delivered, agentOrder.Status())
	publisher.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_FailedReconcilesOrder(t *testing.T) {
	ctx := t.Context()
	agentOrder := outForDeliveryOrder(t, kernel.NewUUID())
	run := outForDeliveryRun(t)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(run.ID(), delivery.Failed, "", "vendor unreachable")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, run.ID()).Return(run, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, run).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, run.OrderID()).Return(agentOrder, nil).Once(),
		orderRepo.On("Update", mock.Anything, agentOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderChanged", mock.Anything, agentOrder).Return(nil).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Failed, run.Status())
	assert.Equal(t, "vendor unreachable", run.DeliveryNotes())
	assert.Equal(t, order.Failed, agentOrder.Status())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	run := assignedDelivery(t)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(run.ID(), delivery.Delivered, "photo", "")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, run.ID()).Return(run, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, new(MockOrderEventPublisher))
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	deliveryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
