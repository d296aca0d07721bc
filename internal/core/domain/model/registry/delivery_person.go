package registry

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrDeliveryPersonIsNotConstructed = errors.New("DeliveryPerson must be created via NewDeliveryPerson constructor")

// DeliveryPerson is a courier assigned to customer orders when they enter
// the DELIVERY state.
type DeliveryPerson struct {
	id           kernel.UUID
	name         string
	identityCard string
	taxID        string
	phone        string

	isConstructed bool
}

// NewDeliveryPerson creates a DeliveryPerson with aggregated validation.
func NewDeliveryPerson(id kernel.UUID, name, identityCard, taxID, phone string) (*DeliveryPerson, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	violations := validatePersonFields(name, identityCard, taxID, phone)
	if err := violations.AsError(); err != nil {
		return nil, err
	}

	return &DeliveryPerson{
		id:            id,
		name:          name,
		identityCard:  identityCard,
		taxID:         taxID,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// RestoreDeliveryPerson rebuilds a DeliveryPerson from persistence.
func RestoreDeliveryPerson(id kernel.UUID, name, identityCard, taxID, phone string) (*DeliveryPerson, error) {
	return NewDeliveryPerson(id, name, identityCard, taxID, phone)
}

// validatePersonFields collects the document violations shared by
// delivery persons and collaborators, preserving the observed message
// order: name, identity card, tax id, phone.
func validatePersonFields(name, identityCard, taxID, phone string) *errs.ValidationError {
	violations := errs.NewValidationError()
	if name == "" {
		violations.Add("name is invalid")
	}
	if identityCard == "" {
		violations.Add("identity card is invalid")
	}
	if taxID == "" {
		violations.Add("tax id is invalid")
	}
	if phone == "" {
		violations.Add("phone is invalid")
	}
	return violations
}

func (d *DeliveryPerson) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryPersonIsNotConstructed
	}
	return nil
}

func (d *DeliveryPerson) ID() kernel.UUID {
	return d.id
}

func (d *DeliveryPerson) Name() string {
	return d.name
}

func (d *DeliveryPerson) IdentityCard() string {
	return d.identityCard
}

func (d *DeliveryPerson) TaxID() string {
	return d.taxID
}

func (d *DeliveryPerson) Phone() string {
	return d.phone
}
