package commands

import (
	"context"
)

// RemoveProductionOrderCommandHandler deletes registered production
// orders. The order is loaded first so a processed order fails the
// state check before anything is touched.
type RemoveProductionOrderCommandHandler struct {
	uowFactory ProductionUoWFactory
}

// NewRemoveProductionOrderCommandHandler creates a handler for
// production order removal.
func NewRemoveProductionOrderCommandHandler(uowFactory ProductionUoWFactory) RemoveProductionOrderCommandHandler {
	return RemoveProductionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the order. An unknown id fails with
// ObjectNotFoundError; a processed order with InvalidStateError.
func (h *RemoveProductionOrderCommandHandler) Handle(ctx context.Context, cmd RemoveProductionOrderCommand) error {
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

	orderRepo := uow.ProductionOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.Status().ValidateUpdatable(); err != nil {
		return err
	}

	if err = orderRepo.Remove(ctx, order.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
