// Package ports defines the persistence contracts between the domain
// layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Add persists a new product. The product must be valid and not
	// already exist.
	Add(ctx context.Context, product *catalog.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, product *catalog.Product) error

	// Get retrieves a product by id. An unknown id fails with
	// ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// Remove deletes a product by id. An unknown id fails with
	// ObjectNotFoundError.
	Remove(ctx context.Context, id kernel.UUID) error
}

// FoodGroupRepository defines the persistence contract for food groups.
type FoodGroupRepository interface {
	Add(ctx context.Context, group *catalog.FoodGroup) error
	Update(ctx context.Context, group *catalog.FoodGroup) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.FoodGroup, error)
	Remove(ctx context.Context, id kernel.UUID) error
}

// PreparationTypeRepository defines the persistence contract for
// preparation types.
type PreparationTypeRepository interface {
	Add(ctx context.Context, preparationType *catalog.PreparationType) error
	Update(ctx context.Context, preparationType *catalog.PreparationType) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.PreparationType, error)
	Remove(ctx context.Context, id kernel.UUID) error
}

// PreparedItemRepository defines the persistence contract for prepared
// items (recipes).
type PreparedItemRepository interface {
	Add(ctx context.Context, item *catalog.PreparedItem) error
	Update(ctx context.Context, item *catalog.PreparedItem) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.PreparedItem, error)

	// GetByIDs retrieves the prepared items for the given ids in one
	// round trip. Used when processing a production order to resolve
	// every recipe the order references; a missing id fails with
	// ObjectNotFoundError.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.PreparedItem, error)

	Remove(ctx context.Context, id kernel.UUID) error
}

// MenuRepository defines the persistence contract for menu aggregates,
// including their item lists.
type MenuRepository interface {
	Add(ctx context.Context, menu *catalog.Menu) error
	Update(ctx context.Context, menu *catalog.Menu) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Menu, error)
	Remove(ctx context.Context, id kernel.UUID) error
}
