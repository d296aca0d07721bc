// Package queries contains read operations for retrieving system
// state. Implements the Query side of the CQRS architecture: handlers
// run raw SQL against the read database and return read models shaped
// for their callers, bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/stock"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetStockMovementQueryIsNotConstructed = errors.New(
		"GetStockMovementQuery must be created via NewGetStockMovementQuery constructor",
	)
	ErrGetMovementsByProductQueryIsNotConstructed = errors.New(
		"GetMovementsByProductQuery must be created via NewGetMovementsByProductQuery constructor",
	)
	ErrGetMovementsByKindQueryIsNotConstructed = errors.New(
		"GetMovementsByKindQuery must be created via NewGetMovementsByKindQuery constructor",
	)
	ErrGetDiscardedMovementsQueryIsNotConstructed = errors.New(
		"GetDiscardedMovementsQuery must be created via NewGetDiscardedMovementsQuery constructor",
	)
)

// StockMovementResponse is the ledger read model. The product name is
// joined in so callers never follow the reference themselves.
type StockMovementResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Date        time.Time
	Quantity    int
	Kind        string
}

// GetStockMovementQuery retrieves a single ledger movement by id.
type GetStockMovementQuery struct {
	movementID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockMovementQuery creates a query for one ledger movement.
func NewGetStockMovementQuery(movementID kernel.UUID) (GetStockMovementQuery, error) {
	if err := movementID.Validate(); err != nil {
		return GetStockMovementQuery{}, err
	}

	return GetStockMovementQuery{
		movementID: movementID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockMovementQuery) Validate() error {
	return q.guard.Validate(ErrGetStockMovementQueryIsNotConstructed)
}

// MovementID returns the requested movement id.
func (q GetStockMovementQuery) MovementID() kernel.UUID { return q.movementID }

// GetMovementsByProductQuery retrieves the full ledger of one product.
type GetMovementsByProductQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMovementsByProductQuery creates a query for a product's ledger.
func NewGetMovementsByProductQuery(productID kernel.UUID) (GetMovementsByProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetMovementsByProductQuery{}, err
	}

	return GetMovementsByProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMovementsByProductQuery) Validate() error {
	return q.guard.Validate(ErrGetMovementsByProductQueryIsNotConstructed)
}

// ProductID returns the product whose ledger is requested.
func (q GetMovementsByProductQuery) ProductID() kernel.UUID { return q.productID }

// GetMovementsByKindQuery retrieves all movements of one kind.
type GetMovementsByKindQuery struct {
	kind stock.Kind

	guard guard.ConstructorGuard
}

// NewGetMovementsByKindQuery creates a query filtering the ledger by
// movement kind.
func NewGetMovementsByKindQuery(kind stock.Kind) (GetMovementsByKindQuery, error) {
	if err := kind.Validate(); err != nil {
		return GetMovementsByKindQuery{}, err
	}

	return GetMovementsByKindQuery{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMovementsByKindQuery) Validate() error {
	return q.guard.Validate(ErrGetMovementsByKindQueryIsNotConstructed)
}

// Kind returns the requested movement kind.
func (q GetMovementsByKindQuery) Kind() stock.Kind { return q.kind }

// GetDiscardedMovementsQuery retrieves DISCARD movements inside an
// inclusive date window. Single discarded units are excluded: only
// discards of two or more units are relevant for waste review.
type GetDiscardedMovementsQuery struct {
	dateStart time.Time
	dateEnd   time.Time

	guard guard.ConstructorGuard
}

// NewGetDiscardedMovementsQuery creates a query over the discard window.
func NewGetDiscardedMovementsQuery(dateStart, dateEnd time.Time) (GetDiscardedMovementsQuery, error) {
	if dateStart.IsZero() {
		return GetDiscardedMovementsQuery{}, errs.NewValueIsRequiredError("date_start")
	}
	if dateEnd.IsZero() {
		return GetDiscardedMovementsQuery{}, errs.NewValueIsRequiredError("date_end")
	}
	if dateEnd.Before(dateStart) {
		return GetDiscardedMovementsQuery{}, errs.NewValueIsInvalidError("date_end")
	}

	return GetDiscardedMovementsQuery{
		dateStart: dateStart,
		dateEnd:   dateEnd,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDiscardedMovementsQuery) Validate() error {
	return q.guard.Validate(ErrGetDiscardedMovementsQueryIsNotConstructed)
}

// DateStart returns the inclusive window start.
func (q GetDiscardedMovementsQuery) DateStart() time.Time { return q.dateStart }

// DateEnd returns the inclusive window end.
func (q GetDiscardedMovementsQuery) DateEnd() time.Time { return q.dateEnd }
