package commands

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateProductionOrderCommandIsNotConstructed = errors.New(
	"CreateProductionOrderCommand must be created via NewCreateProductionOrderCommand constructor",
)

// CreateProductionOrderCommand represents a request to register a
// production order: a planned cooking run against a menu for a date.
// Business validation of the composition is deferred to the aggregate.
type CreateProductionOrderCommand struct {
	orderID        kernel.UUID
	menuID         kernel.UUID
	productionDate time.Time
	items          []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateProductionOrderCommand creates a command to register a
// production order. The order id must be valid; the remaining fields
// are carried as-is for the aggregate to validate.
func NewCreateProductionOrderCommand(
	orderID kernel.UUID,
	menuID kernel.UUID,
	productionDate time.Time,
	items []OrderItemInput,
) (CreateProductionOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateProductionOrderCommand{}, err
	}

	return CreateProductionOrderCommand{
		orderID:        orderID,
		menuID:         menuID,
		productionDate: productionDate,
		items:          items,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductionOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductionOrderCommandIsNotConstructed)
}

// OrderID returns the identity for the new order.
func (c CreateProductionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MenuID returns the referenced menu id.
func (c CreateProductionOrderCommand) MenuID() kernel.UUID {
	return c.menuID
}

// ProductionDate returns the planned production date.
func (c CreateProductionOrderCommand) ProductionDate() time.Time {
	return c.productionDate
}

// Items returns the requested order lines.
func (c CreateProductionOrderCommand) Items() []OrderItemInput {
	return c.items
}
