package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/customerorder"
)

// MarkOrderReadyCommandHandler executes the Production to Ready
// transition, capturing the instant that feeds the
// registration-to-ready lead time metric.
type MarkOrderReadyCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
}

// NewMarkOrderReadyCommandHandler creates a handler for marking orders
// ready.
func NewMarkOrderReadyCommandHandler(uowFactory CustomerOrderUoWFactory) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the transition and returns the updated aggregate.
func (h *MarkOrderReadyCommandHandler) Handle(
	ctx context.Context,
	cmd MarkOrderReadyCommand,
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

	if err = order.MarkReady(time.Now()); err != nil {
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
