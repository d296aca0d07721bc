package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/customerorder"
)

// CompleteOrderCommandHandler executes the Delivery to Completed
// transition, capturing the instant that feeds the
// registration-to-completion lead time metric.
type CompleteOrderCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for completing
// orders.
func NewCompleteOrderCommandHandler(uowFactory CustomerOrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the transition and returns the updated aggregate.
func (h *CompleteOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteOrderCommand,
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

	if err = order.Complete(time.Now()); err != nil {
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
