package catalog

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a raw input the kitchen buys and consumes. Its on-hand
// quantity is never stored on the entity: it is always derived by summing
// the product's stock movements, so the entity carries only the static
// attributes and the minimum threshold used for restock alerts.
type Product struct {
	id             kernel.UUID
	name           string
	unitCost       decimal.Decimal
	minimumStock   int
	energeticValue int
	foodGroupID    kernel.UUID

	isConstructed bool
}

// NewProduct creates a Product, collecting every field violation into a
// single ValidationError so the caller sees all of them in one round trip.
func NewProduct(
	id kernel.UUID,
	name string,
	unitCost decimal.Decimal,
	minimumStock int,
	energeticValue int,
	foodGroupID kernel.UUID,
) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	violations := errs.NewValidationError()
	if name == "" {
		violations.Add("name is invalid")
	}
	if !unitCost.IsPositive() {
		violations.Add("unit cost must be greater than zero")
	}
	if foodGroupID.Validate() != nil {
		violations.Add("food group is invalid")
	}
	if minimumStock < 0 {
		violations.Add("minimum stock is invalid")
	}
	if err := violations.AsError(); err != nil {
		return nil, err
	}

	return &Product{
		id:             id,
		name:           name,
		unitCost:       unitCost,
		minimumStock:   minimumStock,
		energeticValue: energeticValue,
		foodGroupID:    foodGroupID,
		isConstructed:  true,
	}, nil
}

// RestoreProduct rebuilds a Product from persistence.
func RestoreProduct(
	id kernel.UUID,
	name string,
	unitCost decimal.Decimal,
	minimumStock int,
	energeticValue int,
	foodGroupID kernel.UUID,
) (*Product, error) {
	return NewProduct(id, name, unitCost, minimumStock, energeticValue, foodGroupID)
}

// Validate ensures the Product was built via its constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by identity.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product identity.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// UnitCost returns the purchase cost per unit.
func (p *Product) UnitCost() decimal.Decimal {
	return p.unitCost
}

// MinimumStock returns the threshold below which the product shows up in
// restock alerts.
func (p *Product) MinimumStock() int {
	return p.minimumStock
}

// EnergeticValue returns the energetic value per unit.
func (p *Product) EnergeticValue() int {
	return p.energeticValue
}

// FoodGroup returns the id of the food group the product belongs to.
func (p *Product) FoodGroup() kernel.UUID {
	return p.foodGroupID
}
