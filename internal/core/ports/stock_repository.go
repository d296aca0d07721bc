package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/stock"
)

// StockMovementRepository defines the persistence contract for the
// stock movement ledger. The ledger is append-and-remove only:
// movements are never updated in place.
type StockMovementRepository interface {
	// Add appends one movement to the ledger.
	Add(ctx context.Context, movement *stock.Movement) error

	// AddAll appends a batch of movements to the ledger. Used when
	// processing a production order so its debits land in the same
	// transaction as the order's state change.
	AddAll(ctx context.Context, movements []*stock.Movement) error

	// Get retrieves a movement by id. An unknown id fails with
	// ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*stock.Movement, error)

	// Remove deletes a movement by id, reversing its ledger effect.
	// An unknown id fails with ObjectNotFoundError.
	Remove(ctx context.Context, id kernel.UUID) error
}
