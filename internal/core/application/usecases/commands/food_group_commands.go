package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateFoodGroupCommandIsNotConstructed = errors.New(
		"CreateFoodGroupCommand must be created via NewCreateFoodGroupCommand constructor",
	)
	ErrUpdateFoodGroupCommandIsNotConstructed = errors.New(
		"UpdateFoodGroupCommand must be created via NewUpdateFoodGroupCommand constructor",
	)
	ErrRemoveFoodGroupCommandIsNotConstructed = errors.New(
		"RemoveFoodGroupCommand must be created via NewRemoveFoodGroupCommand constructor",
	)
)

// CreateFoodGroupCommand represents a request to register a food group.
type CreateFoodGroupCommand struct {
	groupID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewCreateFoodGroupCommand creates a command to register a food group.
func NewCreateFoodGroupCommand(groupID kernel.UUID, name string) (CreateFoodGroupCommand, error) {
	if err := groupID.Validate(); err != nil {
		return CreateFoodGroupCommand{}, err
	}

	return CreateFoodGroupCommand{
		groupID: groupID,
		name:    name,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFoodGroupCommand) Validate() error {
	return c.guard.Validate(ErrCreateFoodGroupCommandIsNotConstructed)
}

// GroupID returns the identity for the new food group.
func (c CreateFoodGroupCommand) GroupID() kernel.UUID { return c.groupID }

// Name returns the requested group name.
func (c CreateFoodGroupCommand) Name() string { return c.name }

// UpdateFoodGroupCommand represents a request to rename a food group.
type UpdateFoodGroupCommand struct {
	groupID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewUpdateFoodGroupCommand creates a command to update a food group.
func NewUpdateFoodGroupCommand(groupID kernel.UUID, name string) (UpdateFoodGroupCommand, error) {
	if err := groupID.Validate(); err != nil {
		return UpdateFoodGroupCommand{}, err
	}

	return UpdateFoodGroupCommand{
		groupID: groupID,
		name:    name,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateFoodGroupCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFoodGroupCommandIsNotConstructed)
}

// GroupID returns the id of the food group to update.
func (c UpdateFoodGroupCommand) GroupID() kernel.UUID { return c.groupID }

// Name returns the replacement group name.
func (c UpdateFoodGroupCommand) Name() string { return c.name }

// RemoveFoodGroupCommand represents a request to delete a food group.
type RemoveFoodGroupCommand struct {
	groupID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveFoodGroupCommand creates a command to remove a food group.
func NewRemoveFoodGroupCommand(groupID kernel.UUID) (RemoveFoodGroupCommand, error) {
	if err := groupID.Validate(); err != nil {
		return RemoveFoodGroupCommand{}, err
	}

	return RemoveFoodGroupCommand{
		groupID: groupID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFoodGroupCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFoodGroupCommandIsNotConstructed)
}

// GroupID returns the id of the food group to remove.
func (c RemoveFoodGroupCommand) GroupID() kernel.UUID { return c.groupID }
