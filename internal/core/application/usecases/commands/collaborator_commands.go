package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateCollaboratorCommandIsNotConstructed = errors.New(
		"CreateCollaboratorCommand must be created via NewCreateCollaboratorCommand constructor",
	)
	ErrUpdateCollaboratorCommandIsNotConstructed = errors.New(
		"UpdateCollaboratorCommand must be created via NewUpdateCollaboratorCommand constructor",
	)
	ErrRemoveCollaboratorCommandIsNotConstructed = errors.New(
		"RemoveCollaboratorCommand must be created via NewRemoveCollaboratorCommand constructor",
	)
)

// CreateCollaboratorCommand represents a request to register a
// collaborator.
type CreateCollaboratorCommand struct {
	collaboratorID kernel.UUID
	personFields

	guard guard.ConstructorGuard
}

// NewCreateCollaboratorCommand creates a command to register a
// collaborator.
func NewCreateCollaboratorCommand(
	collaboratorID kernel.UUID,
	name, identityCard, taxID, phone string,
) (CreateCollaboratorCommand, error) {
	if err := collaboratorID.Validate(); err != nil {
		return CreateCollaboratorCommand{}, err
	}

	return CreateCollaboratorCommand{
		collaboratorID: collaboratorID,
		personFields:   personFields{name: name, identityCard: identityCard, taxID: taxID, phone: phone},
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCollaboratorCommand) Validate() error {
	return c.guard.Validate(ErrCreateCollaboratorCommandIsNotConstructed)
}

// CollaboratorID returns the identity for the new collaborator.
func (c CreateCollaboratorCommand) CollaboratorID() kernel.UUID { return c.collaboratorID }

// UpdateCollaboratorCommand represents a request to replace a
// collaborator's attributes.
type UpdateCollaboratorCommand struct {
	collaboratorID kernel.UUID
	personFields

	guard guard.ConstructorGuard
}

// NewUpdateCollaboratorCommand creates a command to update a
// collaborator.
func NewUpdateCollaboratorCommand(
	collaboratorID kernel.UUID,
	name, identityCard, taxID, phone string,
) (UpdateCollaboratorCommand, error) {
	if err := collaboratorID.Validate(); err != nil {
		return UpdateCollaboratorCommand{}, err
	}

	return UpdateCollaboratorCommand{
		collaboratorID: collaboratorID,
		personFields:   personFields{name: name, identityCard: identityCard, taxID: taxID, phone: phone},
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCollaboratorCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCollaboratorCommandIsNotConstructed)
}

// CollaboratorID returns the id of the collaborator to update.
func (c UpdateCollaboratorCommand) CollaboratorID() kernel.UUID { return c.collaboratorID }

// RemoveCollaboratorCommand represents a request to delete a
// collaborator.
type RemoveCollaboratorCommand struct {
	collaboratorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCollaboratorCommand creates a command to remove a
// collaborator.
func NewRemoveCollaboratorCommand(collaboratorID kernel.UUID) (RemoveCollaboratorCommand, error) {
	if err := collaboratorID.Validate(); err != nil {
		return RemoveCollaboratorCommand{}, err
	}

	return RemoveCollaboratorCommand{
		collaboratorID: collaboratorID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCollaboratorCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCollaboratorCommandIsNotConstructed)
}

// CollaboratorID returns the id of the collaborator to remove.
func (c RemoveCollaboratorCommand) CollaboratorID() kernel.UUID { return c.collaboratorID }
