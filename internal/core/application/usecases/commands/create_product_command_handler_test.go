package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	group, err := catalog.NewFoodGroup(kernel.NewUUID(), "proteins")
	require.NoError(t, err)
	productID := kernel.NewUUID()

	cmd, err := commands.NewCreateProductCommand(
		productID, "salmon fillet", decimal.NewFromFloat(38.50), 10, 208, group.ID())
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	groupRepo := new(MockFoodGroupRepository)
	uow := new(MockCatalogUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FoodGroupRepository").Return(groupRepo).Once(),
		groupRepo.On("Get", ctx, group.ID()).Return(group, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateProductCommandHandler(factory)
	product, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, productID.IsEqual(product.ID()))
	assert.Equal(t, "salmon fillet", product.Name())
	productRepo.AssertExpectations(t)
	groupRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_AggregatedValidation(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), "", decimal.Zero, -1, 0, kernel.UUID{})
	require.NoError(t, err)

	factory := new(MockCatalogUoWFactory)
	handler := commands.NewCreateProductCommandHandler(factory)

	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t,
		"name is invalid"+
			"unit cost must be greater than zero"+
			"food group is invalid"+
			"minimum stock is invalid",
		err.Error())
	factory.AssertNotCalled(t, "Create")
}

func TestCreateProductCommandHandler_Handle_UnknownFoodGroup(t *testing.T) {
	ctx := t.Context()
	groupID := kernel.NewUUID()

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), "salmon fillet", decimal.NewFromFloat(38.50), 10, 208, groupID)
	require.NoError(t, err)

	groupRepo := new(MockFoodGroupRepository)
	uow := new(MockCatalogUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FoodGroupRepository").Return(groupRepo).Once(),
		groupRepo.On("Get", ctx, groupID).
			Return(nil, errs.NewObjectNotFoundError("food_group_id", groupID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateProductCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
