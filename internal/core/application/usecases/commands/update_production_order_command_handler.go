package commands

import (
	"context"

	"restaurant/internal/core/domain/model/production"
)

// UpdateProductionOrderCommandHandler replaces the composition of a
// still-registered production order. Processed orders refuse the edit
// with InvalidStateError.
type UpdateProductionOrderCommandHandler struct {
	uowFactory ProductionUoWFactory
}

// NewUpdateProductionOrderCommandHandler creates a handler for
// production order updates.
func NewUpdateProductionOrderCommandHandler(uowFactory ProductionUoWFactory) UpdateProductionOrderCommandHandler {
	return UpdateProductionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the new composition and persists it.
// The updated aggregate is returned for the transport layer to render.
func (h *UpdateProductionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateProductionOrderCommand,
) (*production.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := buildProductionItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = order.UpdateComposition(cmd.MenuID(), cmd.ProductionDate(), items); err != nil {
		return nil, err
	}

	if err = resolveProductionReferences(ctx, uow, order); err != nil {
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
