package commands_test

import (
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/stock"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(
		kernel.NewUUID(), "chicken breast", decimal.NewFromFloat(12.90), 20, 165, kernel.NewUUID())
	require.NoError(t, err)
	return product
}

func TestRecordStockMovementCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	product := testProduct(t)

	cmd, err := commands.NewRecordStockMovementCommand(
		kernel.NewUUID(), product.ID(), time.Now(), 40, stock.Purchase)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	stockRepo := new(MockStockMovementRepository)
	uow := new(MockStockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, product.ID()).Return(product, nil).Once(),
		uow.On("StockMovementRepository").Return(stockRepo).Once(),
		stockRepo.On("Add", ctx, mock.AnythingOfType("*stock.Movement")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordStockMovementCommandHandler(factory)
	movement, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 40, movement.Quantity())
	assert.Equal(t, 40, movement.SignedQuantity())
	productRepo.AssertExpectations(t)
	stockRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordStockMovementCommandHandler_Handle_AggregatedValidation(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRecordStockMovementCommand(
		kernel.NewUUID(), kernel.UUID{}, time.Time{}, 0, stock.KindUnknown)
	require.NoError(t, err)

	factory := new(MockStockUoWFactory)
	handler := commands.NewRecordStockMovementCommandHandler(factory)

	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t,
		"product is invalid"+
			"quantity must be greater than zero"+
			"movement kind is invalid"+
			"date is invalid",
		err.Error())
	factory.AssertNotCalled(t, "Create")
}

func TestRecordStockMovementCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()

	cmd, err := commands.NewRecordStockMovementCommand(
		kernel.NewUUID(), productID, time.Now(), 5, stock.Discard)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockStockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, productID).
			Return(nil, errs.NewObjectNotFoundError("product_id", productID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordStockMovementCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
