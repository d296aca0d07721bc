package registry

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
)

var ErrCollaboratorIsNotConstructed = errors.New("Collaborator must be created via NewCollaborator constructor")

// Collaborator is a kitchen or counter employee.
type Collaborator struct {
	id           kernel.UUID
	name         string
	identityCard string
	taxID        string
	phone        string

	isConstructed bool
}

// NewCollaborator creates a Collaborator with aggregated validation.
func NewCollaborator(id kernel.UUID, name, identityCard, taxID, phone string) (*Collaborator, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	violations := validatePersonFields(name, identityCard, taxID, phone)
	if err := violations.AsError(); err != nil {
		return nil, err
	}

	return &Collaborator{
		id:            id,
		name:          name,
		identityCard:  identityCard,
		taxID:         taxID,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// RestoreCollaborator rebuilds a Collaborator from persistence.
func RestoreCollaborator(id kernel.UUID, name, identityCard, taxID, phone string) (*Collaborator, error) {
	return NewCollaborator(id, name, identityCard, taxID, phone)
}

func (c *Collaborator) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCollaboratorIsNotConstructed
	}
	return nil
}

func (c *Collaborator) ID() kernel.UUID {
	return c.id
}

func (c *Collaborator) Name() string {
	return c.name
}

func (c *Collaborator) IdentityCard() string {
	return c.identityCard
}

func (c *Collaborator) TaxID() string {
	return c.taxID
}

func (c *Collaborator) Phone() string {
	return c.phone
}
