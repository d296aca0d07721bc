package production

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is a production order: a planned cooking run of portions of one
// or more prepared items drawn from a menu, for a given date.
//
// Invariants:
//   - The item list is non-empty and every portion quantity is positive.
//   - A registered order may be updated or deleted; processing is a
//     one-way transition, after which the order accepts no structural
//     edits and is kept as history.
//   - The order owns its items; items reference but do not own the
//     catalog's prepared items and products.
type Order struct {
	id             kernel.UUID
	menuID         kernel.UUID
	productionDate time.Time
	status         Status
	items          []Item

	isConstructed bool
}

// NewOrder creates a production order, running every composition check
// and aggregating the violations into a single ValidationError: item
// list, production date, menu reference, state and portion quantities
// are all reported in one message.
func NewOrder(
	id kernel.UUID,
	menuID kernel.UUID,
	productionDate time.Time,
	status Status,
	items []Item,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if err := validateComposition(menuID, productionDate, status, items); err != nil {
		return nil, err
	}

	owned := make([]Item, len(items))
	copy(owned, items)

	return &Order{
		id:             id,
		menuID:         menuID,
		productionDate: productionDate,
		status:         status,
		items:          owned,
		isConstructed:  true,
	}, nil
}

// RestoreOrder rebuilds a production order from persistence.
func RestoreOrder(
	id kernel.UUID,
	menuID kernel.UUID,
	productionDate time.Time,
	status Status,
	items []Item,
) (*Order, error) {
	return NewOrder(id, menuID, productionDate, status, items)
}

// validateComposition collects every field violation of a create or
// update request. All checks run; nothing fails fast.
func validateComposition(menuID kernel.UUID, productionDate time.Time, status Status, items []Item) error {
	violations := errs.NewValidationError()
	if len(items) == 0 {
		violations.Add("production order must have at least one item")
	}
	if productionDate.IsZero() {
		violations.Add("production date is invalid")
	}
	if menuID.Validate() != nil {
		violations.Add("menu is invalid")
	}
	if status.Validate() != nil {
		violations.Add("order state is invalid")
	}
	for _, item := range items {
		if item.Portions() <= 0 {
			violations.Add("portion quantity must be greater than zero")
			break
		}
	}
	return violations.AsError()
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

// Menu returns the referenced menu id.
func (o *Order) Menu() kernel.UUID {
	return o.menuID
}

// ProductionDate returns the date the batch is planned for.
func (o *Order) ProductionDate() time.Time {
	return o.productionDate
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

// UpdateComposition replaces the order's menu, date and items. Permitted
// only while the order is still registered; a processed order fails with
// InvalidStateError. The full composition is revalidated as on create.
func (o *Order) UpdateComposition(menuID kernel.UUID, productionDate time.Time, items []Item) error {
	if err := o.status.ValidateUpdatable(); err != nil {
		return err
	}

	if err := validateComposition(menuID, productionDate, o.status, items); err != nil {
		return err
	}

	owned := make([]Item, len(items))
	copy(owned, items)

	o.menuID = menuID
	o.productionDate = productionDate
	o.items = owned
	return nil
}

// Process transitions the order to Processed. The stock debits that
// accompany processing are the command handler's responsibility and
// commit atomically with this transition; a second call fails with
// InvalidStateError("order already processed").
func (o *Order) Process() error {
	newStatus, err := o.status.Process()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
