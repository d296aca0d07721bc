package commands

import (
	"context"

	"restaurant/internal/core/domain/model/customerorder"
)

// StartOrderProductionCommandHandler executes the Registered to
// Production transition. The order is re-read inside the transaction,
// so concurrent transition calls serialize and exactly one wins; the
// loser fails the predecessor-state check.
type StartOrderProductionCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
}

// NewStartOrderProductionCommandHandler creates a handler for starting
// order production.
func NewStartOrderProductionCommandHandler(uowFactory CustomerOrderUoWFactory) StartOrderProductionCommandHandler {
	return StartOrderProductionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the transition and returns the updated aggregate.
func (h *StartOrderProductionCommandHandler) Handle(
	ctx context.Context,
	cmd StartOrderProductionCommand,
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

	if err = order.StartProduction(); err != nil {
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
