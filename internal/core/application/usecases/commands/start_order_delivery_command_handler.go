package commands

import (
	"context"

	"restaurant/internal/core/domain/model/customerorder"
)

// StartOrderDeliveryCommandHandler executes the Ready to Delivery
// transition, assigning the delivery person who takes the order out.
type StartOrderDeliveryCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
}

// NewStartOrderDeliveryCommandHandler creates a handler for starting
// order delivery.
func NewStartOrderDeliveryCommandHandler(uowFactory CustomerOrderUoWFactory) StartOrderDeliveryCommandHandler {
	return StartOrderDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the delivery person, applies the transition and
// returns the updated aggregate. An unknown delivery person fails with
// ObjectNotFoundError.
func (h *StartOrderDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd StartOrderDeliveryCommand,
) (*customerorder.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.CustomerOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.DeliveryPersonID().Validate() == nil {
		if _, err = uow.DeliveryPersonRepository().Get(ctx, cmd.DeliveryPersonID()); err != nil {
			return nil, err
		}
	}

	if err = order.StartDelivery(cmd.DeliveryPersonID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
