package commands

import (
	"context"
)

// RemoveCustomerOrderCommandHandler deletes customer orders that have
// not yet been locked by the Ready transition.
type RemoveCustomerOrderCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
}

// NewRemoveCustomerOrderCommandHandler creates a handler for customer
// order removal.
func NewRemoveCustomerOrderCommandHandler(uowFactory CustomerOrderUoWFactory) RemoveCustomerOrderCommandHandler {
	return RemoveCustomerOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the order. An unknown id fails with
// ObjectNotFoundError; a locked order with InvalidStateError.
func (h *RemoveCustomerOrderCommandHandler) Handle(ctx context.Context, cmd RemoveCustomerOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.CustomerOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.ValidateDeletable(); err != nil {
		return err
	}

	if err = orderRepo.Remove(ctx, order.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
