package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := restoredOrder(t, order.Confirmed)
	cmd, err := commands.NewCreateShipmentCommand(
		testOrder.ID(), shipment.Express, testWeight(t), testDimensions(t), "Warehouse A")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := shipmentRepo.Calls[1]
	added := addCall.Arguments[1].(*shipment.Shipment)
	assert.True(t, added.OrderID().IsEqual(testOrder.ID()))
	assert.Equal(t, shipment.Express, added.Mode())
	assert.Empty(t, added.WaybillNumbers())

	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCreateShipmentCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	testOrder := restoredOrder(t, order.Confirmed)
	cmd, err := commands.NewCreateShipmentCommand(
		testOrder.ID(), shipment.Surface, testWeight(t), testDimensions(t), "Warehouse A")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateShipmentCommandHandler_Handle_OrderNotReady(t *testing.T) {
	ctx := t.Context()

	// Every status except Confirmed must refuse shipment creation.
	for _, status := range []order.Status{
		order.Pending, order.Processing, order.Dispatched, order.InTransit,
		order.OutForDelivery, order.Delivered, order.Cancelled, order.Returned,
	} {
		t.Run(status.String(), func(t *testing.T) {
			testOrder := restoredOrder(t, status)
			cmd, err := commands.NewCreateShipmentCommand(
				testOrder.ID(), shipment.Surface, testWeight(t), testDimensions(t), "Warehouse A")
			require.NoError(t, err)

			orderRepo := new(MockOrderRepository)
			uow := new(MockUoW)

			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(orderRepo).Once(),
				orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockUoWFactory)
			factory.On("Create").Return(uow).Once()

			handler := commands.NewCreateShipmentCommandHandler(factory)
			err = handler.Handle(ctx, cmd)

			require.ErrorIs(t, err, commands.ErrOrderNotReady)
			uow.AssertNotCalled(t, "Commit", ctx)
		})
	}
}

func TestCreateShipmentCommandHandler_Handle_DuplicateShipment(t *testing.T) {
	ctx := t.Context()
	testOrder := restoredOrder(t, order.Confirmed)
	existing := testShipment(t, testOrder.ID())
	cmd, err := commands.NewCreateShipmentCommand(
		testOrder.ID(), shipment.Surface, testWeight(t), testDimensions(t), "Warehouse A")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByOrderID", ctx, testOrder.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrShipmentAlreadyExists)
	shipmentRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}
