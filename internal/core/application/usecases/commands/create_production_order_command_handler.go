package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"
)

// CreateProductionOrderCommandHandler registers production orders in
// the Registered state.
type CreateProductionOrderCommandHandler struct {
	uowFactory ProductionUoWFactory
}

// NewCreateProductionOrderCommandHandler creates a handler for
// production order registration.
func NewCreateProductionOrderCommandHandler(uowFactory ProductionUoWFactory) CreateProductionOrderCommandHandler {
	return CreateProductionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the composition, resolves the menu and prepared item
// references inside one transaction, and persists the new order. The
// created aggregate is returned for the transport layer to render.
func (h *CreateProductionOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateProductionOrderCommand,
) (*production.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := buildProductionItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	order, err := production.NewOrder(
		cmd.OrderID(), cmd.MenuID(), cmd.ProductionDate(), production.Registered, items)
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

	if err = resolveProductionReferences(ctx, uow, order); err != nil {
		return nil, err
	}

	if err = uow.ProductionOrderRepository().Add(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

// buildProductionItems maps transport inputs to order lines, minting a
// fresh line identity for each.
func buildProductionItems(inputs []OrderItemInput) ([]production.Item, error) {
	items := make([]production.Item, 0, len(inputs))
	for _, input := range inputs {
		item, err := production.NewItem(kernel.NewUUID(), input.PreparedItemID, input.Portions)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// resolveProductionReferences checks that the menu and every prepared
// item the order references exist. An unresolved reference fails with
// ObjectNotFoundError.
func resolveProductionReferences(ctx context.Context, uow ProductionUoW, order *production.Order) error {
	if _, err := uow.MenuRepository().Get(ctx, order.Menu()); err != nil {
		return err
	}

	ids := make([]kernel.UUID, 0, len(order.Items()))
	for _, item := range order.Items() {
		ids = append(ids, item.PreparedItemID())
	}

	_, err := uow.PreparedItemRepository().GetByIDs(ctx, ids)
	return err
}
