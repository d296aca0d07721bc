package catalog

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrFoodGroupIsNotConstructed = errors.New("FoodGroup must be created via NewFoodGroup constructor")

// FoodGroup classifies products (proteins, carbohydrates, ...).
type FoodGroup struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewFoodGroup creates a FoodGroup with aggregated validation.
func NewFoodGroup(id kernel.UUID, name string) (*FoodGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	violations := errs.NewValidationError()
	if name == "" {
		violations.Add("name is invalid")
	}
	if err := violations.AsError(); err != nil {
		return nil, err
	}

	return &FoodGroup{id: id, name: name, isConstructed: true}, nil
}

// RestoreFoodGroup rebuilds a FoodGroup from persistence.
func RestoreFoodGroup(id kernel.UUID, name string) (*FoodGroup, error) {
	return NewFoodGroup(id, name)
}

func (g *FoodGroup) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrFoodGroupIsNotConstructed
	}
	return nil
}

func (g *FoodGroup) ID() kernel.UUID {
	return g.id
}

func (g *FoodGroup) Name() string {
	return g.name
}
