package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrRemoveStockMovementCommandIsNotConstructed = errors.New(
	"RemoveStockMovementCommand must be created via NewRemoveStockMovementCommand constructor",
)

// RemoveStockMovementCommand represents a request to delete one ledger
// movement, reversing its effect on the product's on-hand quantity.
type RemoveStockMovementCommand struct {
	movementID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveStockMovementCommand creates a command to remove a movement.
func NewRemoveStockMovementCommand(movementID kernel.UUID) (RemoveStockMovementCommand, error) {
	if err := movementID.Validate(); err != nil {
		return RemoveStockMovementCommand{}, err
	}

	return RemoveStockMovementCommand{
		movementID: movementID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveStockMovementCommand) Validate() error {
	return c.guard.Validate(ErrRemoveStockMovementCommandIsNotConstructed)
}

// MovementID returns the id of the movement to remove.
func (c RemoveStockMovementCommand) MovementID() kernel.UUID {
	return c.movementID
}
