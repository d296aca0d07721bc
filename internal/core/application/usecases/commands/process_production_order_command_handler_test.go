package commands_test

import (
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"
	"restaurant/internal/core/domain/model/stock"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPreparedItem(t *testing.T, productID kernel.UUID) *catalog.PreparedItem {
	t.Helper()
	item, err := catalog.NewPreparedItem(
		kernel.NewUUID(), "grilled chicken", productID, kernel.NewUUID(),
		decimal.NewFromFloat(4.20), 30)
	require.NoError(t, err)
	return item
}

func testProductionOrder(t *testing.T, preparedItemID kernel.UUID, portions int) *production.Order {
	t.Helper()
	item, err := production.NewItem(kernel.NewUUID(), preparedItemID, portions)
	require.NoError(t, err)
	order, err := production.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), time.Now(), production.Registered, []production.Item{item})
	require.NoError(t, err)
	return order
}

func TestProcessProductionOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	productID := kernel.NewUUID()
	preparedItem := testPreparedItem(t, productID)
	order := testProductionOrder(t, preparedItem.ID(), 12)

	cmd, err := commands.NewProcessProductionOrderCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockProductionOrderRepository)
	preparedItemRepo := new(MockPreparedItemRepository)
	stockRepo := new(MockStockMovementRepository)
	uow := new(MockProductionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductionOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("PreparedItemRepository").Return(preparedItemRepo).Once(),
		preparedItemRepo.On("GetByIDs", ctx, []kernel.UUID{preparedItem.ID()}).
			Return([]*catalog.PreparedItem{preparedItem}, nil).
			Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*production.Order")).Return(nil).Once(),
		uow.On("StockMovementRepository").Return(stockRepo).Once(),
		stockRepo.On("AddAll", ctx, mock.AnythingOfType("[]*stock.Movement")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewProcessProductionOrderCommandHandler(factory)
	processed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, production.Processed, processed.Status())

	// The ledger debit matches the summed portions of the order.
	addAllCall := stockRepo.Calls[0]
	movements := addAllCall.Arguments[1].([]*stock.Movement)
	require.Len(t, movements, 1)
	assert.True(t, productID.IsEqual(movements[0].Product()))
	assert.Equal(t, 12, movements[0].Quantity())
	assert.Equal(t, stock.Consumption, movements[0].Kind())

	orderRepo.AssertExpectations(t)
	preparedItemRepo.AssertExpectations(t)
	stockRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProcessProductionOrderCommandHandler_Handle_AlreadyProcessed(t *testing.T) {
	ctx := t.Context()

	productID := kernel.NewUUID()
	preparedItem := testPreparedItem(t, productID)
	order := testProductionOrder(t, preparedItem.ID(), 5)
	require.NoError(t, order.Process())

	cmd, err := commands.NewProcessProductionOrderCommand(order.ID())
	require.NoError(t, err)

	orderRepo := new(MockProductionOrderRepository)
	preparedItemRepo := new(MockPreparedItemRepository)
	uow := new(MockProductionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductionOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("PreparedItemRepository").Return(preparedItemRepo).Once(),
		preparedItemRepo.On("GetByIDs", ctx, []kernel.UUID{preparedItem.ID()}).
			Return([]*catalog.PreparedItem{preparedItem}, nil).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewProcessProductionOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, "order already processed", err.Error())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestProcessProductionOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewProcessProductionOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockProductionOrderRepository)
	uow := new(MockProductionUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductionOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("production_order_id", orderID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewProcessProductionOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestProcessProductionOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockProductionUoWFactory)
	handler := commands.NewProcessProductionOrderCommandHandler(factory)

	_, err := handler.Handle(ctx, commands.ProcessProductionOrderCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrProcessProductionOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
