package registry

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrNeighborhoodIsNotConstructed = errors.New("Neighborhood must be created via NewNeighborhood constructor")

// Neighborhood is a delivery area with its own delivery fee.
type Neighborhood struct {
	id          kernel.UUID
	name        string
	deliveryFee decimal.Decimal

	isConstructed bool
}

// NewNeighborhood creates a Neighborhood with aggregated validation.
func NewNeighborhood(id kernel.UUID, name string, deliveryFee decimal.Decimal) (*Neighborhood, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	violations := errs.NewValidationError()
	if name == "" {
		violations.Add("name is invalid")
	}
	if !deliveryFee.IsPositive() {
		violations.Add("delivery fee must be greater than zero")
	}
	if err := violations.AsError(); err != nil {
		return nil, err
	}

	return &Neighborhood{id: id, name: name, deliveryFee: deliveryFee, isConstructed: true}, nil
}

// RestoreNeighborhood rebuilds a Neighborhood from persistence.
func RestoreNeighborhood(id kernel.UUID, name string, deliveryFee decimal.Decimal) (*Neighborhood, error) {
	return NewNeighborhood(id, name, deliveryFee)
}

func (n *Neighborhood) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNeighborhoodIsNotConstructed
	}
	return nil
}

func (n *Neighborhood) ID() kernel.UUID {
	return n.id
}

func (n *Neighborhood) Name() string {
	return n.name
}

func (n *Neighborhood) DeliveryFee() decimal.Decimal {
	return n.deliveryFee
}
