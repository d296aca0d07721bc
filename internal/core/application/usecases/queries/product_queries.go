package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
	ErrGetAllProductsQueryIsNotConstructed = errors.New(
		"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
	)
	ErrGetProductsBelowMinimumQueryIsNotConstructed = errors.New(
		"GetProductsBelowMinimumQuery must be created via NewGetProductsBelowMinimumQuery constructor",
	)
)

// ProductResponse is the product read model. OnHand is derived from the
// stock ledger at read time; it is never a stored counter.
type ProductResponse struct {
	ID             kernel.UUID
	Name           string
	UnitCost       decimal.Decimal
	MinimumStock   int
	EnergeticValue int
	FoodGroupID    kernel.UUID
	OnHand         int
}

// GetProductQuery retrieves one product with its derived on-hand
// quantity.
type GetProductQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for one product.
func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}

	return GetProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the requested product id.
func (q GetProductQuery) ProductID() kernel.UUID { return q.productID }

// GetAllProductsQuery retrieves every product with its derived on-hand
// quantity.
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a query for the full product list.
func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// GetProductsBelowMinimumQuery retrieves products whose derived on-hand
// quantity is below their minimum stock threshold. Feeds the restock
// alert job and the restock endpoint.
type GetProductsBelowMinimumQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductsBelowMinimumQuery creates a restock alert query.
func NewGetProductsBelowMinimumQuery() GetProductsBelowMinimumQuery {
	return GetProductsBelowMinimumQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsBelowMinimumQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsBelowMinimumQueryIsNotConstructed)
}
