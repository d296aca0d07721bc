package commands_test

import (
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/customerorder"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/registry"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T) *registry.Client {
	t.Helper()
	client, err := registry.NewClient(
		kernel.NewUUID(), "Ana Costa", "SP-98.765.432", "987.654.321-00", "+55 11 98888-0000",
		"Rua das Flores", "120", kernel.NewUUID(), "next to the bakery")
	require.NoError(t, err)
	return client
}

func TestCreateCustomerOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	client := testClient(t)
	preparedItemID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	now := time.Now()

	cmd, err := commands.NewCreateCustomerOrderCommand(
		orderID, client.ID(), now, now,
		[]commands.OrderItemInput{{PreparedItemID: preparedItemID, Portions: 3}})
	require.NoError(t, err)

	orderRepo := new(MockCustomerOrderRepository)
	clientRepo := new(MockClientRepository)
	preparedItemRepo := new(MockPreparedItemRepository)
	uow := new(MockCustomerOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", ctx, client.ID()).Return(client, nil).Once(),
		uow.On("PreparedItemRepository").Return(preparedItemRepo).Once(),
		preparedItemRepo.On("GetByIDs", ctx, []kernel.UUID{preparedItemID}).
			Return([]*catalog.PreparedItem{}, nil).
			Once(),
		uow.On("CustomerOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*customerorder.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateCustomerOrderCommandHandler(factory)
	order, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, orderID.IsEqual(order.ID()))
	assert.Equal(t, customerorder.Registered, order.Status())
	assert.Len(t, order.Items(), 1)
	orderRepo.AssertExpectations(t)
	clientRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateCustomerOrderCommandHandler_Handle_AggregatedValidation(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateCustomerOrderCommand(
		kernel.NewUUID(), kernel.UUID{}, time.Time{}, time.Time{}, nil)
	require.NoError(t, err)

	factory := new(MockCustomerOrderUoWFactory)
	handler := commands.NewCreateCustomerOrderCommandHandler(factory)

	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t,
		"order date is invalid"+
			"order time is invalid"+
			"client is invalid"+
			"order has no items",
		err.Error())
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCustomerOrderCommandHandler_Handle_UnknownClient(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	now := time.Now()

	cmd, err := commands.NewCreateCustomerOrderCommand(
		kernel.NewUUID(), clientID, now, now,
		[]commands.OrderItemInput{{PreparedItemID: kernel.NewUUID(), Portions: 1}})
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	uow := new(MockCustomerOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", ctx, clientID).
			Return(nil, errs.NewObjectNotFoundError("client_id", clientID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateCustomerOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
