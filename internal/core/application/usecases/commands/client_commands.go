package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateClientCommandIsNotConstructed = errors.New(
		"CreateClientCommand must be created via NewCreateClientCommand constructor",
	)
	ErrUpdateClientCommandIsNotConstructed = errors.New(
		"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
	)
	ErrRemoveClientCommandIsNotConstructed = errors.New(
		"RemoveClientCommand must be created via NewRemoveClientCommand constructor",
	)
)

// clientFields carries the client attributes shared by the create and
// update commands. Business validation is deferred to the aggregate.
type clientFields struct {
	name           string
	identityCard   string
	taxID          string
	phone          string
	street         string
	number         string
	neighborhoodID kernel.UUID
	referencePoint string
}

// CreateClientCommand represents a request to register a client.
type CreateClientCommand struct {
	clientID kernel.UUID
	clientFields

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a client.
func NewCreateClientCommand(
	clientID kernel.UUID,
	name, identityCard, taxID, phone, street, number string,
	neighborhoodID kernel.UUID,
	referencePoint string,
) (CreateClientCommand, error) {
	if err := clientID.Validate(); err != nil {
		return CreateClientCommand{}, err
	}

	return CreateClientCommand{
		clientID: clientID,
		clientFields: clientFields{
			name:           name,
			identityCard:   identityCard,
			taxID:          taxID,
			phone:          phone,
			street:         street,
			number:         number,
			neighborhoodID: neighborhoodID,
			referencePoint: referencePoint,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ClientID returns the identity for the new client.
func (c CreateClientCommand) ClientID() kernel.UUID { return c.clientID }

// UpdateClientCommand represents a request to replace a client's
// attributes.
type UpdateClientCommand struct {
	clientID kernel.UUID
	clientFields

	guard guard.ConstructorGuard
}

// NewUpdateClientCommand creates a command to update a client.
func NewUpdateClientCommand(
	clientID kernel.UUID,
	name, identityCard, taxID, phone, street, number string,
	neighborhoodID kernel.UUID,
	referencePoint string,
) (UpdateClientCommand, error) {
	if err := clientID.Validate(); err != nil {
		return UpdateClientCommand{}, err
	}

	return UpdateClientCommand{
		clientID: clientID,
		clientFields: clientFields{
			name:           name,
			identityCard:   identityCard,
			taxID:          taxID,
			phone:          phone,
			street:         street,
			number:         number,
			neighborhoodID: neighborhoodID,
			referencePoint: referencePoint,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

// ClientID returns the id of the client to update.
func (c UpdateClientCommand) ClientID() kernel.UUID { return c.clientID }

// RemoveClientCommand represents a request to delete a client.
type RemoveClientCommand struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveClientCommand creates a command to remove a client.
func NewRemoveClientCommand(clientID kernel.UUID) (RemoveClientCommand, error) {
	if err := clientID.Validate(); err != nil {
		return RemoveClientCommand{}, err
	}

	return RemoveClientCommand{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveClientCommand) Validate() error {
	return c.guard.Validate(ErrRemoveClientCommandIsNotConstructed)
}

// ClientID returns the id of the client to remove.
func (c RemoveClientCommand) ClientID() kernel.UUID { return c.clientID }
