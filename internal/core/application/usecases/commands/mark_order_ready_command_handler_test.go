package commands_test

import (
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/customerorder"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCustomerOrder(t *testing.T, status customerorder.Status) *customerorder.Order {
	t.Helper()
	item, err := customerorder.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2)
	require.NoError(t, err)
	order, err := customerorder.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), time.Now(), time.Now(),
		customerorder.Registered, []customerorder.Item{item})
	require.NoError(t, err)

	if status >= customerorder.Production {
		require.NoError(t, order.StartProduction())
	}
	if status >= customerorder.Ready {
		require.NoError(t, order.MarkReady(time.Now()))
	}
	if status >= customerorder.Delivery {
		require.NoError(t, order.StartDelivery(kernel.NewUUID()))
	}
	if status >= customerorder.Completed {
		require.NoError(t, order.Complete(time.Now()))
	}
	return order
}

func TestMarkOrderReadyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	order := testCustomerOrder(t, customerorder.Production)

	cmd, err := commands.NewMarkOrderReadyCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockCustomerOrderRepository)
	uow := new(MockCustomerOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*customerorder.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkOrderReadyCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, customerorder.Ready, updated.Status())
	require.NotNil(t, updated.ReadyAt())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkOrderReadyCommandHandler_Handle_WrongState(t *testing.T) {
	ctx := t.Context()
	order := testCustomerOrder(t, customerorder.Registered)

	cmd, err := commands.NewMarkOrderReadyCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockCustomerOrderRepository)
	uow := new(MockCustomerOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkOrderReadyCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
