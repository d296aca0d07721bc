package commands

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateCustomerOrderCommandIsNotConstructed = errors.New(
	"UpdateCustomerOrderCommand must be created via NewUpdateCustomerOrderCommand constructor",
)

// UpdateCustomerOrderCommand represents a request to replace a customer
// order's client, date, time and items. Allowed only before the order
// is locked by the Ready transition.
type UpdateCustomerOrderCommand struct {
	orderID   kernel.UUID
	clientID  kernel.UUID
	orderDate time.Time
	orderTime time.Time
	items     []OrderItemInput

	guard guard.ConstructorGuard
}

// NewUpdateCustomerOrderCommand creates a command to update a customer
// order. The order id must be valid; the remaining fields are carried
// as-is for the aggregate to validate.
func NewUpdateCustomerOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	orderDate time.Time,
	orderTime time.Time,
	items []OrderItemInput,
) (UpdateCustomerOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateCustomerOrderCommand{}, err
	}

	return UpdateCustomerOrderCommand{
		orderID:   orderID,
		clientID:  clientID,
		orderDate: orderDate,
		orderTime: orderTime,
		items:     items,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to update.
func (c UpdateCustomerOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the new client reference.
func (c UpdateCustomerOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// OrderDate returns the new order date.
func (c UpdateCustomerOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// OrderTime returns the new order time.
func (c UpdateCustomerOrderCommand) OrderTime() time.Time {
	return c.orderTime
}

// Items returns the replacement order lines.
func (c UpdateCustomerOrderCommand) Items() []OrderItemInput {
	return c.items
}
