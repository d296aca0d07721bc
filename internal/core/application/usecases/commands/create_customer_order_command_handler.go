package commands

import (
	"context"

	"restaurant/internal/core/domain/model/customerorder"
	"restaurant/internal/core/domain/model/kernel"
)

// CreateCustomerOrderCommandHandler registers customer orders in the
// Registered state.
type CreateCustomerOrderCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
}

// NewCreateCustomerOrderCommandHandler creates a handler for customer
// order registration.
func NewCreateCustomerOrderCommandHandler(uowFactory CustomerOrderUoWFactory) CreateCustomerOrderCommandHandler {
	return CreateCustomerOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the composition, resolves the client and prepared
// item references inside one transaction, and persists the new order.
// The created aggregate is returned for the transport layer to render.
func (h *CreateCustomerOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCustomerOrderCommand,
) (*customerorder.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := buildCustomerOrderItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	order, err := customerorder.NewOrder(
		cmd.OrderID(), cmd.ClientID(), cmd.OrderDate(), cmd.OrderTime(), customerorder.Registered, items)
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

	if err = resolveCustomerOrderReferences(ctx, uow, order); err != nil {
		return nil, err
	}

	if err = uow.CustomerOrderRepository().Add(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

// buildCustomerOrderItems maps transport inputs to order lines, minting
// a fresh line identity for each.
func buildCustomerOrderItems(inputs []OrderItemInput) ([]customerorder.Item, error) {
	items := make([]customerorder.Item, 0, len(inputs))
	for _, input := range inputs {
		item, err := customerorder.NewItem(kernel.NewUUID(), input.PreparedItemID, input.Portions)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// resolveCustomerOrderReferences checks that the client and every
// prepared item the order references exist. An unresolved reference
// fails with ObjectNotFoundError.
func resolveCustomerOrderReferences(ctx context.Context, uow CustomerOrderUoW, order *customerorder.Order) error {
	if _, err := uow.ClientRepository().Get(ctx, order.Client()); err != nil {
		return err
	}

	ids := make([]kernel.UUID, 0, len(order.Items()))
	for _, item := range order.Items() {
		ids = append(ids, item.PreparedItemID())
	}

	_, err := uow.PreparedItemRepository().GetByIDs(ctx, ids)
	return err
}
