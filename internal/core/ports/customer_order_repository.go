package ports

import (
	"context"

	"restaurant/internal/core/domain/model/customerorder"
	"restaurant/internal/core/domain/model/kernel"
)

// CustomerOrderRepository defines the persistence contract for customer
// order aggregates, including their item lists, transition timestamps
// and delivery person assignment.
type CustomerOrderRepository interface {
	// Add persists a new customer order with its items.
	Add(ctx context.Context, order *customerorder.Order) error

	// Update persists changes to an existing order. Items are replaced
	// wholesale to match the aggregate's current list.
	Update(ctx context.Context, order *customerorder.Order) error

	// Get retrieves an order with its items by id. An unknown id fails
	// with ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*customerorder.Order, error)

	// Remove deletes an order and its items by id. An unknown id fails
	// with ObjectNotFoundError.
	Remove(ctx context.Context, id kernel.UUID) error
}
