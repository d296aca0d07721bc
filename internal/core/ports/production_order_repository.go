package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"
)

// ProductionOrderRepository defines the persistence contract for
// production order aggregates, including their item lists.
type ProductionOrderRepository interface {
	// Add persists a new production order with its items.
	Add(ctx context.Context, order *production.Order) error

	// Update persists changes to an existing order. Items are replaced
	// wholesale to match the aggregate's current list.
	Update(ctx context.Context, order *production.Order) error

	// Get retrieves an order with its items by id. An unknown id fails
	// with ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*production.Order, error)

	// Remove deletes an order and its items by id. An unknown id fails
	// with ObjectNotFoundError.
	Remove(ctx context.Context, id kernel.UUID) error
}
