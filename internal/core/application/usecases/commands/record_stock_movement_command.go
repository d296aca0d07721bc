package commands

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/stock"
	"restaurant/internal/pkg/guard"
)

var ErrRecordStockMovementCommandIsNotConstructed = errors.New(
	"RecordStockMovementCommand must be created via NewRecordStockMovementCommand constructor",
)

// RecordStockMovementCommand represents a request to append one movement
// to the stock ledger. Field-level business validation is deferred to
// the Movement aggregate so that all violations of a bad request are
// reported together; the command only fixes the movement's identity.
type RecordStockMovementCommand struct {
	movementID kernel.UUID
	productID  kernel.UUID
	date       time.Time
	quantity   int
	kind       stock.Kind

	guard guard.ConstructorGuard
}

// NewRecordStockMovementCommand creates a command to record a stock
// movement. The movement id must be valid; the remaining fields are
// carried as-is for the aggregate to validate.
func NewRecordStockMovementCommand(
	movementID kernel.UUID,
	productID kernel.UUID,
	date time.Time,
	quantity int,
	kind stock.Kind,
) (RecordStockMovementCommand, error) {
	if err := movementID.Validate(); err != nil {
		return RecordStockMovementCommand{}, err
	}

	return RecordStockMovementCommand{
		movementID: movementID,
		productID:  productID,
		date:       date,
		quantity:   quantity,
		kind:       kind,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordStockMovementCommand) Validate() error {
	return c.guard.Validate(ErrRecordStockMovementCommandIsNotConstructed)
}

// MovementID returns the identity for the new movement.
func (c RecordStockMovementCommand) MovementID() kernel.UUID {
	return c.movementID
}

// ProductID returns the product the movement applies to.
func (c RecordStockMovementCommand) ProductID() kernel.UUID {
	return c.productID
}

// Date returns the movement date.
func (c RecordStockMovementCommand) Date() time.Time {
	return c.date
}

// Quantity returns the unsigned movement quantity.
func (c RecordStockMovementCommand) Quantity() int {
	return c.quantity
}

// Kind returns the movement kind.
func (c RecordStockMovementCommand) Kind() stock.Kind {
	return c.kind
}
