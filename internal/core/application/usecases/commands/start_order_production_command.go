package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrStartOrderProductionCommandIsNotConstructed = errors.New(
	"StartOrderProductionCommand must be created via NewStartOrderProductionCommand constructor",
)

// StartOrderProductionCommand represents a request to move a registered
// customer order into the kitchen.
type StartOrderProductionCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartOrderProductionCommand creates a command to start production
// of a customer order.
func NewStartOrderProductionCommand(orderID kernel.UUID) (StartOrderProductionCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartOrderProductionCommand{}, err
	}

	return StartOrderProductionCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderProductionCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderProductionCommandIsNotConstructed)
}

// OrderID returns the id of the order to transition.
func (c StartOrderProductionCommand) OrderID() kernel.UUID {
	return c.orderID
}
