package commands

import (
	"context"

	"restaurant/internal/core/domain/model/customerorder"
)

// UpdateCustomerOrderCommandHandler replaces the composition of a
// customer order that is still in Registered or Production. Later
// states refuse the edit with InvalidStateError.
type UpdateCustomerOrderCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
}

// NewUpdateCustomerOrderCommandHandler creates a handler for customer
// order updates.
func NewUpdateCustomerOrderCommandHandler(uowFactory CustomerOrderUoWFactory) UpdateCustomerOrderCommandHandler {
	return UpdateCustomerOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the new composition and persists it.
// The updated aggregate is returned for the transport layer to render.
func (h *UpdateCustomerOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCustomerOrderCommand,
) (*customerorder.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := buildCustomerOrderItems(cmd.Items())
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

	orderRepo := uow.CustomerOrderRepository()
	order, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = order.UpdateComposition(cmd.ClientID(), cmd.OrderDate(), cmd.OrderTime(), items); err != nil {
		return nil, err
	}

	if err = resolveCustomerOrderReferences(ctx, uow, order); err != nil {
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
