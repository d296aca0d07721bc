package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/customerorder"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetCustomerOrderQueryIsNotConstructed = errors.New(
		"GetCustomerOrderQuery must be created via NewGetCustomerOrderQuery constructor",
	)
	ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
		"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
	)
)

// CustomerOrderItemResponse is one line of a customer order read model.
type CustomerOrderItemResponse struct {
	ID               kernel.UUID
	PreparedItemID   kernel.UUID
	PreparedItemName string
	Portions         int
}

// CustomerOrderResponse is the customer order read model, with the
// client and delivery person names joined in.
type CustomerOrderResponse struct {
	ID                 kernel.UUID
	ClientID           kernel.UUID
	ClientName         string
	DeliveryPersonID   *kernel.UUID
	DeliveryPersonName string
	OrderDate          time.Time
	OrderTime          time.Time
	Status             string
	RegisteredAt       time.Time
	ReadyAt            *time.Time
	CompletedAt        *time.Time
	Items              []CustomerOrderItemResponse
}

// GetCustomerOrderQuery retrieves one customer order with its items.
type GetCustomerOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrderQuery creates a query for one customer order.
func NewGetCustomerOrderQuery(orderID kernel.UUID) (GetCustomerOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetCustomerOrderQuery{}, err
	}

	return GetCustomerOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrderQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetCustomerOrderQuery) OrderID() kernel.UUID { return q.orderID }

// ListCustomerOrdersQuery retrieves customer orders, optionally
// filtered by client, by state and by an inclusive order date window.
// Nil filters match everything, so one query serves the by-client,
// by-state, by-date and combined listings.
type ListCustomerOrdersQuery struct {
	clientID  *kernel.UUID
	status    *customerorder.Status
	dateStart *time.Time
	dateEnd   *time.Time

	guard guard.ConstructorGuard
}

// NewListCustomerOrdersQuery creates a filtered customer order
// listing. The date bounds must be given together.
func NewListCustomerOrdersQuery(
	clientID *kernel.UUID,
	status *customerorder.Status,
	dateStart *time.Time,
	dateEnd *time.Time,
) (ListCustomerOrdersQuery, error) {
	if clientID != nil {
		if err := clientID.Validate(); err != nil {
			return ListCustomerOrdersQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListCustomerOrdersQuery{}, err
		}
	}
	if (dateStart == nil) != (dateEnd == nil) {
		return ListCustomerOrdersQuery{}, errs.NewValueIsRequiredError("date range")
	}
	if dateStart != nil && dateEnd.Before(*dateStart) {
		return ListCustomerOrdersQuery{}, errs.NewValueIsInvalidError("date_end")
	}

	return ListCustomerOrdersQuery{
		clientID:  clientID,
		status:    status,
		dateStart: dateStart,
		dateEnd:   dateEnd,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

// ClientID returns the optional client filter.
func (q ListCustomerOrdersQuery) ClientID() *kernel.UUID { return q.clientID }

// Status returns the optional state filter.
func (q ListCustomerOrdersQuery) Status() *customerorder.Status { return q.status }

// DateStart returns the optional inclusive window start.
func (q ListCustomerOrdersQuery) DateStart() *time.Time { return q.dateStart }

// DateEnd returns the optional inclusive window end.
func (q ListCustomerOrdersQuery) DateEnd() *time.Time { return q.dateEnd }
