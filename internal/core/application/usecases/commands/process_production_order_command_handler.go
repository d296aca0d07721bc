package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"
	"restaurant/internal/core/domain/services"
)

// ProcessProductionOrderCommandHandler executes order processing: the
// one-way transition to Processed plus the consumption movements the
// order's recipes cause, committed in a single transaction. The order
// is re-read inside the transaction, so two concurrent process calls
// serialize and the loser fails the state check; stock is debited
// exactly once.
type ProcessProductionOrderCommandHandler struct {
	uowFactory ProductionUoWFactory
	planner    services.StockConsumption
}

// NewProcessProductionOrderCommandHandler creates a handler for
// production order processing.
func NewProcessProductionOrderCommandHandler(uowFactory ProductionUoWFactory) ProcessProductionOrderCommandHandler {
	return ProcessProductionOrderCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewStockConsumption(),
	}
}

// Handle processes the order and returns the processed aggregate.
// A second call for the same order fails with InvalidStateError.
func (h *ProcessProductionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessProductionOrderCommand,
) (*production.Order, error) {
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

	orderRepo := uow.ProductionOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(order.Items()))
	for _, item := range order.Items() {
		ids = append(ids, item.PreparedItemID())
	}

	preparedItems, err := uow.PreparedItemRepository().GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	movements, err := h.planner.Plan(order, preparedItems)
	if err != nil {
		return nil, err
	}

	if err = order.Process(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.StockMovementRepository().AddAll(ctx, movements); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
