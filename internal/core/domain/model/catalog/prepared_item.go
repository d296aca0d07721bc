package catalog

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrPreparedItemIsNotConstructed = errors.New("PreparedItem must be created via NewPreparedItem constructor")

// PreparedItem is a recipe: a named preparation derived from a source
// product via a preparation type, with its own cost and time. Production
// and customer orders reference prepared items by id; processing a
// production order walks this reference back to the source product to
// debit stock.
type PreparedItem struct {
	id                kernel.UUID
	name              string
	productID         kernel.UUID
	preparationTypeID kernel.UUID
	preparationCost   decimal.Decimal
	preparationTime   int

	isConstructed bool
}

// NewPreparedItem creates a PreparedItem, collecting every field violation
// into a single ValidationError.
func NewPreparedItem(
	id kernel.UUID,
	name string,
	productID kernel.UUID,
	preparationTypeID kernel.UUID,
	preparationCost decimal.Decimal,
	preparationTime int,
) (*PreparedItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	violations := errs.NewValidationError()
	if productID.Validate() != nil {
		violations.Add("related product is required")
	}
	if preparationTypeID.Validate() != nil {
		violations.Add("related preparation type is required")
	}
	if preparationTime <= 0 {
		violations.Add("preparation time is invalid")
	}
	if !preparationCost.IsPositive() {
		violations.Add("preparation cost is invalid")
	}
	if err := violations.AsError(); err != nil {
		return nil, err
	}

	return &PreparedItem{
		id:                id,
		name:              name,
		productID:         productID,
		preparationTypeID: preparationTypeID,
		preparationCost:   preparationCost,
		preparationTime:   preparationTime,
		isConstructed:     true,
	}, nil
}

// RestorePreparedItem rebuilds a PreparedItem from persistence.
func RestorePreparedItem(
	id kernel.UUID,
	name string,
	productID kernel.UUID,
	preparationTypeID kernel.UUID,
	preparationCost decimal.Decimal,
	preparationTime int,
) (*PreparedItem, error) {
	return NewPreparedItem(id, name, productID, preparationTypeID, preparationCost, preparationTime)
}

func (i *PreparedItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrPreparedItemIsNotConstructed
	}
	return nil
}

func (i *PreparedItem) ID() kernel.UUID {
	return i.id
}

func (i *PreparedItem) Name() string {
	return i.name
}

// Product returns the id of the source product the recipe consumes.
func (i *PreparedItem) Product() kernel.UUID {
	return i.productID
}

// PreparationType returns the id of the preparation type.
func (i *PreparedItem) PreparationType() kernel.UUID {
	return i.preparationTypeID
}

// PreparationCost returns the cost of preparing one portion.
func (i *PreparedItem) PreparationCost() decimal.Decimal {
	return i.preparationCost
}

// PreparationTime returns the preparation time in minutes.
func (i *PreparedItem) PreparationTime() int {
	return i.preparationTime
}
