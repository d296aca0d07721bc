package commands

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateCustomerOrderCommandIsNotConstructed = errors.New(
	"CreateCustomerOrderCommand must be created via NewCreateCustomerOrderCommand constructor",
)

// CreateCustomerOrderCommand represents a request to register a
// customer order. Business validation of the composition is deferred to
// the aggregate.
type CreateCustomerOrderCommand struct {
	orderID   kernel.UUID
	clientID  kernel.UUID
	orderDate time.Time
	orderTime time.Time
	items     []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateCustomerOrderCommand creates a command to register a
// customer order. The order id must be valid; the remaining fields are
// carried as-is for the aggregate to validate.
func NewCreateCustomerOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	orderDate time.Time,
	orderTime time.Time,
	items []OrderItemInput,
) (CreateCustomerOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateCustomerOrderCommand{}, err
	}

	return CreateCustomerOrderCommand{
		orderID:   orderID,
		clientID:  clientID,
		orderDate: orderDate,
		orderTime: orderTime,
		items:     items,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerOrderCommandIsNotConstructed)
}

// OrderID returns the identity for the new order.
func (c CreateCustomerOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the ordering client's id.
func (c CreateCustomerOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// OrderDate returns the calendar date the order was placed on.
func (c CreateCustomerOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// OrderTime returns the time of day the order was placed at.
func (c CreateCustomerOrderCommand) OrderTime() time.Time {
	return c.orderTime
}

// Items returns the requested order lines.
func (c CreateCustomerOrderCommand) Items() []OrderItemInput {
	return c.items
}
