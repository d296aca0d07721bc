package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrProcessProductionOrderCommandIsNotConstructed = errors.New(
	"ProcessProductionOrderCommand must be created via NewProcessProductionOrderCommand constructor",
)

// ProcessProductionOrderCommand represents a request to process a
// registered production order: transition it to Processed and debit the
// stock its recipes consume.
type ProcessProductionOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewProcessProductionOrderCommand creates a command to process a
// production order.
func NewProcessProductionOrderCommand(orderID kernel.UUID) (ProcessProductionOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ProcessProductionOrderCommand{}, err
	}

	return ProcessProductionOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessProductionOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessProductionOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to process.
func (c ProcessProductionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
