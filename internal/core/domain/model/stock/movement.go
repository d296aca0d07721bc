package stock

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrMovementIsNotConstructed = errors.New("Movement must be created via NewMovement constructor")

// Movement is one signed, dated, typed quantity change against a
// product's inventory. Movements are immutable once created and the log
// is append-only: a product's on-hand quantity is always the signed sum
// of its movements, never a counter mutated in place.
type Movement struct {
	id        kernel.UUID
	productID kernel.UUID
	date      time.Time
	quantity  int
	kind      Kind

	isConstructed bool
}

// NewMovement creates a Movement, collecting every field violation into a
// single ValidationError: unresolved product, non-positive quantity,
// invalid kind, missing date.
func NewMovement(
	id kernel.UUID,
	productID kernel.UUID,
	date time.Time,
	quantity int,
	kind Kind,
) (*Movement, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	violations := errs.NewValidationError()
	if productID.Validate() != nil {
		violations.Add("product is invalid")
	}
	if quantity <= 0 {
		violations.Add("quantity must be greater than zero")
	}
	if kind.Validate() != nil {
		violations.Add("movement kind is invalid")
	}
	if date.IsZero() {
		violations.Add("date is invalid")
	}
	if err := violations.AsError(); err != nil {
		return nil, err
	}

	return &Movement{
		id:            id,
		productID:     productID,
		date:          date,
		quantity:      quantity,
		kind:          kind,
		isConstructed: true,
	}, nil
}

// RestoreMovement rebuilds a Movement from persistence.
func RestoreMovement(
	id kernel.UUID,
	productID kernel.UUID,
	date time.Time,
	quantity int,
	kind Kind,
) (*Movement, error) {
	return NewMovement(id, productID, date, quantity, kind)
}

// Validate ensures the Movement was built via its constructor.
func (m *Movement) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMovementIsNotConstructed
	}
	return nil
}

// ID returns the movement identity.
func (m *Movement) ID() kernel.UUID {
	return m.id
}

// Product returns the id of the product the movement applies to.
func (m *Movement) Product() kernel.UUID {
	return m.productID
}

// Date returns the movement date.
func (m *Movement) Date() time.Time {
	return m.date
}

// Quantity returns the unsigned recorded quantity.
func (m *Movement) Quantity() int {
	return m.quantity
}

// Kind returns the movement kind.
func (m *Movement) Kind() Kind {
	return m.kind
}

// SignedQuantity returns the movement's contribution to the product's
// on-hand quantity: positive for credits, negative for debits.
func (m *Movement) SignedQuantity() int {
	return m.quantity * m.kind.Sign()
}
