package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetProductionOrderQueryIsNotConstructed = errors.New(
		"GetProductionOrderQuery must be created via NewGetProductionOrderQuery constructor",
	)
	ErrListProductionOrdersQueryIsNotConstructed = errors.New(
		"ListProductionOrdersQuery must be created via NewListProductionOrdersQuery constructor",
	)
)

// ProductionOrderItemResponse is one line of a production order read
// model, with the prepared item name joined in.
type ProductionOrderItemResponse struct {
	ID               kernel.UUID
	PreparedItemID   kernel.UUID
	PreparedItemName string
	Portions         int
}

// ProductionOrderResponse is the production order read model.
type ProductionOrderResponse struct {
	ID             kernel.UUID
	MenuID         kernel.UUID
	MenuName       string
	ProductionDate time.Time
	Status         string
	Items          []ProductionOrderItemResponse
}

// GetProductionOrderQuery retrieves one production order with its
// items.
type GetProductionOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductionOrderQuery creates a query for one production order.
func NewGetProductionOrderQuery(orderID kernel.UUID) (GetProductionOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetProductionOrderQuery{}, err
	}

	return GetProductionOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductionOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionOrderQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetProductionOrderQuery) OrderID() kernel.UUID { return q.orderID }

// ListProductionOrdersQuery retrieves production orders, optionally
// filtered by state and by an inclusive production date window. Nil
// filters match everything, so one query serves the by-state, by-date
// and combined listings.
type ListProductionOrdersQuery struct {
	status    *production.Status
	dateStart *time.Time
	dateEnd   *time.Time

	guard guard.ConstructorGuard
}

// NewListProductionOrdersQuery creates a filtered production order
// listing. The date bounds must be given together.
func NewListProductionOrdersQuery(
	status *production.Status,
	dateStart *time.Time,
	dateEnd *time.Time,
) (ListProductionOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListProductionOrdersQuery{}, err
		}
	}
	if (dateStart == nil) != (dateEnd == nil) {
		return ListProductionOrdersQuery{}, errs.NewValueIsRequiredError("date range")
	}
	if dateStart != nil && dateEnd.Before(*dateStart) {
		return ListProductionOrdersQuery{}, errs.NewValueIsInvalidError("date_end")
	}

	return ListProductionOrdersQuery{
		status:    status,
		dateStart: dateStart,
		dateEnd:   dateEnd,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProductionOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListProductionOrdersQueryIsNotConstructed)
}

// Status returns the optional state filter.
func (q ListProductionOrdersQuery) Status() *production.Status { return q.status }

// DateStart returns the optional inclusive window start.
func (q ListProductionOrdersQuery) DateStart() *time.Time { return q.dateStart }

// DateEnd returns the optional inclusive window end.
func (q ListProductionOrdersQuery) DateEnd() *time.Time { return q.dateEnd }
