package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateDeliveryPersonCommandIsNotConstructed = errors.New(
		"CreateDeliveryPersonCommand must be created via NewCreateDeliveryPersonCommand constructor",
	)
	ErrUpdateDeliveryPersonCommandIsNotConstructed = errors.New(
		"UpdateDeliveryPersonCommand must be created via NewUpdateDeliveryPersonCommand constructor",
	)
	ErrRemoveDeliveryPersonCommandIsNotConstructed = errors.New(
		"RemoveDeliveryPersonCommand must be created via NewRemoveDeliveryPersonCommand constructor",
	)
)

// personFields carries the identification attributes shared by delivery
// person and collaborator commands.
type personFields struct {
	name         string
	identityCard string
	taxID        string
	phone        string
}

// CreateDeliveryPersonCommand represents a request to register a
// delivery person.
type CreateDeliveryPersonCommand struct {
	personID kernel.UUID
	personFields

	guard guard.ConstructorGuard
}

// NewCreateDeliveryPersonCommand creates a command to register a
// delivery person.
func NewCreateDeliveryPersonCommand(
	personID kernel.UUID,
	name, identityCard, taxID, phone string,
) (CreateDeliveryPersonCommand, error) {
	if err := personID.Validate(); err != nil {
		return CreateDeliveryPersonCommand{}, err
	}

	return CreateDeliveryPersonCommand{
		personID:     personID,
		personFields: personFields{name: name, identityCard: identityCard, taxID: taxID, phone: phone},
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryPersonCommandIsNotConstructed)
}

// PersonID returns the identity for the new delivery person.
func (c CreateDeliveryPersonCommand) PersonID() kernel.UUID { return c.personID }

// UpdateDeliveryPersonCommand represents a request to replace a
// delivery person's attributes.
type UpdateDeliveryPersonCommand struct {
	personID kernel.UUID
	personFields

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryPersonCommand creates a command to update a delivery
// person.
func NewUpdateDeliveryPersonCommand(
	personID kernel.UUID,
	name, identityCard, taxID, phone string,
) (UpdateDeliveryPersonCommand, error) {
	if err := personID.Validate(); err != nil {
		return UpdateDeliveryPersonCommand{}, err
	}

	return UpdateDeliveryPersonCommand{
		personID:     personID,
		personFields: personFields{name: name, identityCard: identityCard, taxID: taxID, phone: phone},
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryPersonCommandIsNotConstructed)
}

// PersonID returns the id of the delivery person to update.
func (c UpdateDeliveryPersonCommand) PersonID() kernel.UUID { return c.personID }

// RemoveDeliveryPersonCommand represents a request to delete a delivery
// person.
type RemoveDeliveryPersonCommand struct {
	personID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveDeliveryPersonCommand creates a command to remove a delivery
// person.
func NewRemoveDeliveryPersonCommand(personID kernel.UUID) (RemoveDeliveryPersonCommand, error) {
	if err := personID.Validate(); err != nil {
		return RemoveDeliveryPersonCommand{}, err
	}

	return RemoveDeliveryPersonCommand{
		personID: personID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDeliveryPersonCommandIsNotConstructed)
}

// PersonID returns the id of the delivery person to remove.
func (c RemoveDeliveryPersonCommand) PersonID() kernel.UUID { return c.personID }
