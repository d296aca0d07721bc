package commands

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateProductionOrderCommandIsNotConstructed = errors.New(
	"UpdateProductionOrderCommand must be created via NewUpdateProductionOrderCommand constructor",
)

// UpdateProductionOrderCommand represents a request to replace a
// registered production order's menu, date and items.
type UpdateProductionOrderCommand struct {
	orderID        kernel.UUID
	menuID         kernel.UUID
	productionDate time.Time
	items          []OrderItemInput

	guard guard.ConstructorGuard
}

// NewUpdateProductionOrderCommand creates a command to update a
// production order. The order id must be valid; the remaining fields
// are carried as-is for the aggregate to validate.
func NewUpdateProductionOrderCommand(
	orderID kernel.UUID,
	menuID kernel.UUID,
	productionDate time.Time,
	items []OrderItemInput,
) (UpdateProductionOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateProductionOrderCommand{}, err
	}

	return UpdateProductionOrderCommand{
		orderID:        orderID,
		menuID:         menuID,
		productionDate: productionDate,
		items:          items,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductionOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductionOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to update.
func (c UpdateProductionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MenuID returns the new menu reference.
func (c UpdateProductionOrderCommand) MenuID() kernel.UUID {
	return c.menuID
}

// ProductionDate returns the new production date.
func (c UpdateProductionOrderCommand) ProductionDate() time.Time {
	return c.productionDate
}

// Items returns the replacement order lines.
func (c UpdateProductionOrderCommand) Items() []OrderItemInput {
	return c.items
}
