package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrRemoveCustomerOrderCommandIsNotConstructed = errors.New(
	"RemoveCustomerOrderCommand must be created via NewRemoveCustomerOrderCommand constructor",
)

// RemoveCustomerOrderCommand represents a request to delete a customer
// order. Orders locked by the Ready transition refuse removal.
type RemoveCustomerOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCustomerOrderCommand creates a command to remove a customer
// order.
func NewRemoveCustomerOrderCommand(orderID kernel.UUID) (RemoveCustomerOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RemoveCustomerOrderCommand{}, err
	}

	return RemoveCustomerOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCustomerOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCustomerOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to remove.
func (c RemoveCustomerOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
