package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreatePreparationTypeCommandIsNotConstructed = errors.New(
		"CreatePreparationTypeCommand must be created via NewCreatePreparationTypeCommand constructor",
	)
	ErrUpdatePreparationTypeCommandIsNotConstructed = errors.New(
		"UpdatePreparationTypeCommand must be created via NewUpdatePreparationTypeCommand constructor",
	)
	ErrRemovePreparationTypeCommandIsNotConstructed = errors.New(
		"RemovePreparationTypeCommand must be created via NewRemovePreparationTypeCommand constructor",
	)
)

// CreatePreparationTypeCommand represents a request to register a
// preparation type.
type CreatePreparationTypeCommand struct {
	typeID      kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewCreatePreparationTypeCommand creates a command to register a
// preparation type.
func NewCreatePreparationTypeCommand(typeID kernel.UUID, description string) (CreatePreparationTypeCommand, error) {
	if err := typeID.Validate(); err != nil {
		return CreatePreparationTypeCommand{}, err
	}

	return CreatePreparationTypeCommand{
		typeID:      typeID,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePreparationTypeCommand) Validate() error {
	return c.guard.Validate(ErrCreatePreparationTypeCommandIsNotConstructed)
}

// TypeID returns the identity for the new preparation type.
func (c CreatePreparationTypeCommand) TypeID() kernel.UUID { return c.typeID }

// Description returns the requested description.
func (c CreatePreparationTypeCommand) Description() string { return c.description }

// UpdatePreparationTypeCommand represents a request to change a
// preparation type's description.
type UpdatePreparationTypeCommand struct {
	typeID      kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewUpdatePreparationTypeCommand creates a command to update a
// preparation type.
func NewUpdatePreparationTypeCommand(typeID kernel.UUID, description string) (UpdatePreparationTypeCommand, error) {
	if err := typeID.Validate(); err != nil {
		return UpdatePreparationTypeCommand{}, err
	}

	return UpdatePreparationTypeCommand{
		typeID:      typeID,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePreparationTypeCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePreparationTypeCommandIsNotConstructed)
}

// TypeID returns the id of the preparation type to update.
func (c UpdatePreparationTypeCommand) TypeID() kernel.UUID { return c.typeID }

// Description returns the replacement description.
func (c UpdatePreparationTypeCommand) Description() string { return c.description }

// RemovePreparationTypeCommand represents a request to delete a
// preparation type.
type RemovePreparationTypeCommand struct {
	typeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemovePreparationTypeCommand creates a command to remove a
// preparation type.
func NewRemovePreparationTypeCommand(typeID kernel.UUID) (RemovePreparationTypeCommand, error) {
	if err := typeID.Validate(); err != nil {
		return RemovePreparationTypeCommand{}, err
	}

	return RemovePreparationTypeCommand{
		typeID: typeID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemovePreparationTypeCommand) Validate() error {
	return c.guard.Validate(ErrRemovePreparationTypeCommandIsNotConstructed)
}

// TypeID returns the id of the preparation type to remove.
func (c RemovePreparationTypeCommand) TypeID() kernel.UUID { return c.typeID }
