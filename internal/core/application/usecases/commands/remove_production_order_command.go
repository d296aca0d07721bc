package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrRemoveProductionOrderCommandIsNotConstructed = errors.New(
	"RemoveProductionOrderCommand must be created via NewRemoveProductionOrderCommand constructor",
)

// RemoveProductionOrderCommand represents a request to delete a
// registered production order. Processed orders are history and refuse
// removal.
type RemoveProductionOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveProductionOrderCommand creates a command to remove a
// production order.
func NewRemoveProductionOrderCommand(orderID kernel.UUID) (RemoveProductionOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RemoveProductionOrderCommand{}, err
	}

	return RemoveProductionOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveProductionOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProductionOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to remove.
func (c RemoveProductionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
