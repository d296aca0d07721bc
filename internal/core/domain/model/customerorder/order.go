package customerorder

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is a customer order aggregate: what a client asked for, when,
// and how far along the kitchen-to-doorstep lifecycle it is.
//
// Invariants:
//   - The item list is non-empty and every portion quantity is positive.
//   - The lifecycle moves strictly forward, one state at a time:
//     Registered, Production, Ready, Delivery, Completed.
//   - Structural edits are allowed only in Registered and Production;
//     from Ready onward the composition is locked.
//   - A delivery person is assigned exactly at the Delivery transition
//     and stays for Completed; earlier states carry no assignment.
//   - readyAt and completedAt are captured once, at their transitions,
//     and never change afterwards.
type Order struct {
	id               kernel.UUID
	clientID         kernel.UUID
	deliveryPersonID *kernel.UUID
	orderDate        time.Time
	orderTime        time.Time
	status           Status
	items            []Item

	registeredAt time.Time
	readyAt      *time.Time
	completedAt  *time.Time

	isConstructed bool
}

// NewOrder creates a customer order in whatever state the caller names
// (create requests pass Registered). Every composition check runs and
// the violations aggregate into a single ValidationError.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	orderDate time.Time,
	orderTime time.Time,
	status Status,
	items []Item,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if err := validateComposition(clientID, orderDate, orderTime, status, items); err != nil {
		return nil, err
	}

	owned := make([]Item, len(items))
	copy(owned, items)

	return &Order{
		id:            id,
		clientID:      clientID,
		orderDate:     orderDate,
		orderTime:     orderTime,
		status:        status,
		items:         owned,
		registeredAt:  combine(orderDate, orderTime),
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds an order from persistence, including its
// transition timestamps and delivery person assignment. The assignment
// must be consistent with the restored state.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	deliveryPersonID *kernel.UUID,
	orderDate time.Time,
	orderTime time.Time,
	status Status,
	items []Item,
	readyAt *time.Time,
	completedAt *time.Time,
) (*Order, error) {
	order, err := NewOrder(id, clientID, orderDate, orderTime, status, items)
	if err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveDeliveryPerson(deliveryPersonID != nil); err != nil {
		return nil, err
	}

	order.deliveryPersonID = deliveryPersonID
	order.readyAt = readyAt
	order.completedAt = completedAt
	return order, nil
}

// validateComposition collects every field violation of a create or
// update request. All checks run; nothing fails fast.
func validateComposition(clientID kernel.UUID, orderDate, orderTime time.Time, status Status, items []Item) error {
	violations := errs.NewValidationError()
	if orderDate.IsZero() {
		violations.Add("order date is invalid")
	}
	if orderTime.IsZero() {
		violations.Add("order time is invalid")
	}
	if clientID.Validate() != nil {
		violations.Add("client is invalid")
	}
	if status.Validate() != nil {
		violations.Add("order state is invalid")
	}
	if len(items) == 0 {
		violations.Add("order has no items")
	}
	for _, item := range items {
		if item.Portions() <= 0 {
			violations.Add("portion quantity must be greater than zero")
			break
		}
	}
	return violations.AsError()
}

// combine merges the order's calendar date with its time of day into a
// single instant, used as the registration timestamp for lead metrics.
func combine(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		date.Location(),
	)
}

// Validate ensures the Order was built via its constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Client returns the ordering client's id.
func (o *Order) Client() kernel.UUID {
	return o.clientID
}

// DeliveryPerson returns the assigned delivery person, or nil before the
// Delivery transition.
func (o *Order) DeliveryPerson() *kernel.UUID {
	return o.deliveryPersonID
}

// OrderDate returns the calendar date the order was placed on.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// OrderTime returns the time of day the order was placed at.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the ordered item list. The returned slice is a copy.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// RegisteredAt returns the registration instant (order date plus time).
func (o *Order) RegisteredAt() time.Time {
	return o.registeredAt
}

// ReadyAt returns when the order became ready, or nil before that.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// CompletedAt returns when the order was delivered, or nil before that.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// UpdateComposition replaces the order's client, date, time and items.
// Permitted only in Registered and Production; later states fail with
// InvalidStateError. The full composition is revalidated as on create.
func (o *Order) UpdateComposition(clientID kernel.UUID, orderDate, orderTime time.Time, items []Item) error {
	if err := o.status.ValidateUpdatable(); err != nil {
		return err
	}

	if err := validateComposition(clientID, orderDate, orderTime, o.status, items); err != nil {
		return err
	}

	owned := make([]Item, len(items))
	copy(owned, items)

	o.clientID = clientID
	o.orderDate = orderDate
	o.orderTime = orderTime
	o.items = owned
	o.registeredAt = combine(orderDate, orderTime)
	return nil
}

// ValidateDeletable reports whether the order may still be removed.
// Removal follows the same lock as structural edits.
func (o *Order) ValidateDeletable() error {
	return o.status.ValidateUpdatable()
}

// StartProduction moves a registered order into the kitchen.
func (o *Order) StartProduction() error {
	newStatus, err := o.status.Advance(Production)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkReady declares the order prepared and records the instant, which
// feeds the registration-to-ready lead time metric. Requires Production.
func (o *Order) MarkReady(now time.Time) error {
	newStatus, err := o.status.Advance(Ready)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.readyAt = &now
	return nil
}

// StartDelivery hands the order to a delivery person. Requires Ready
// and a valid delivery person reference.
func (o *Order) StartDelivery(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return errs.NewValidationError("delivery person is invalid").AsError()
	}

	newStatus, err := o.status.Advance(Delivery)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryPersonID = &deliveryPersonID
	return nil
}

// Complete closes the order and records the instant, which feeds the
// registration-to-completion lead time metric. Requires Delivery.
func (o *Order) Complete(now time.Time) error {
	newStatus, err := o.status.Advance(Completed)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.completedAt = &now
	return nil
}
