package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/customerorder"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/registry"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testDeliveryPerson(t *testing.T) *registry.DeliveryPerson {
	t.Helper()
	person, err := registry.NewDeliveryPerson(
		kernel.NewUUID(), "Marcos Silva", "MG-12.345.678", "123.456.789-00", "+55 31 99999-0000")
	require.NoError(t, err)
	return person
}

func TestStartOrderDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	order := testCustomerOrder(t, customerorder.Ready)
	person := testDeliveryPerson(t)

	cmd, err := commands.NewStartOrderDeliveryCommand(order.ID(), person.ID())
	require.NoError(t, err)

	orderRepo := new(MockCustomerOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	uow := new(MockCustomerOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		personRepo.On("Get", ctx, person.ID()).Return(person, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*customerorder.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartOrderDeliveryCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, customerorder.Delivery, updated.Status())
	require.NotNil(t, updated.DeliveryPerson())
	assert.True(t, person.ID().IsEqual(*updated.DeliveryPerson()))
	orderRepo.AssertExpectations(t)
	personRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartOrderDeliveryCommandHandler_Handle_UnknownDeliveryPerson(t *testing.T) {
	ctx := t.Context()
	order := testCustomerOrder(t, customerorder.Ready)
	personID := kernel.NewUUID()

	cmd, err := commands.NewStartOrderDeliveryCommand(order.ID(), personID)
	require.NoError(t, err)

	orderRepo := new(MockCustomerOrderRepository)
	personRepo := new(MockDeliveryPersonRepository)
	uow := new(MockCustomerOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, order.ID()).Return(order, nil).Once(),
		uow.On("DeliveryPersonRepository").Return(personRepo).Once(),
		personRepo.On("Get", ctx, personID).
			Return(nil, errs.NewObjectNotFoundError("delivery_person_id", personID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartOrderDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, customerorder.Ready, order.Status())
}

func TestStartOrderDeliveryCommandHandler_Handle_MissingDeliveryPerson(t *testing.T) {
	ctx := t.Context()
	order := testCustomerOrder(t, customerorder.Ready)

	cmd, err := commands.NewStartOrderDeliveryCommand(order.ID(), kernel.UUID{})
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

	handler := commands.NewStartOrderDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t, "delivery person is invalid", err.Error())
}
