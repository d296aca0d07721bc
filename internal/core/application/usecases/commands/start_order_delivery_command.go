package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrStartOrderDeliveryCommandIsNotConstructed = errors.New(
	"StartOrderDeliveryCommand must be created via NewStartOrderDeliveryCommand constructor",
)

// StartOrderDeliveryCommand represents a request to hand a ready order
// to a delivery person. The delivery person reference is carried as-is;
// the aggregate and handler validate it.
type StartOrderDeliveryCommand struct {
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartOrderDeliveryCommand creates a command to start delivery of
// an order.
func NewStartOrderDeliveryCommand(
	orderID kernel.UUID,
	deliveryPersonID kernel.UUID,
) (StartOrderDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartOrderDeliveryCommand{}, err
	}

	return StartOrderDeliveryCommand{
		orderID:          orderID,
		deliveryPersonID: deliveryPersonID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderDeliveryCommandIsNotConstructed)
}

// OrderID returns the id of the order to transition.
func (c StartOrderDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryPersonID returns the delivery person taking the order out.
func (c StartOrderDeliveryCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}
