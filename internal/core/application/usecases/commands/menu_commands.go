package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateMenuCommandIsNotConstructed = errors.New(
		"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
	)
	ErrUpdateMenuCommandIsNotConstructed = errors.New(
		"UpdateMenuCommand must be created via NewUpdateMenuCommand constructor",
	)
	ErrRemoveMenuCommandIsNotConstructed = errors.New(
		"RemoveMenuCommand must be created via NewRemoveMenuCommand constructor",
	)
)

// CreateMenuCommand represents a request to register a menu.
type CreateMenuCommand struct {
	menuID      kernel.UUID
	name        string
	description string
	itemIDs     []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateMenuCommand creates a command to register a menu.
func NewCreateMenuCommand(
	menuID kernel.UUID,
	name string,
	description string,
	itemIDs []kernel.UUID,
) (CreateMenuCommand, error) {
	if err := menuID.Validate(); err != nil {
		return CreateMenuCommand{}, err
	}

	return CreateMenuCommand{
		menuID:      menuID,
		name:        name,
		description: description,
		itemIDs:     itemIDs,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

// MenuID returns the identity for the new menu.
func (c CreateMenuCommand) MenuID() kernel.UUID { return c.menuID }

// UpdateMenuCommand represents a request to replace a menu's name,
// description and item list.
type UpdateMenuCommand struct {
	menuID      kernel.UUID
	name        string
	description string
	itemIDs     []kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateMenuCommand creates a command to update a menu.
func NewUpdateMenuCommand(
	menuID kernel.UUID,
	name string,
	description string,
	itemIDs []kernel.UUID,
) (UpdateMenuCommand, error) {
	if err := menuID.Validate(); err != nil {
		return UpdateMenuCommand{}, err
	}

	return UpdateMenuCommand{
		menuID:      menuID,
		name:        name,
		description: description,
		itemIDs:     itemIDs,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuCommandIsNotConstructed)
}

// MenuID returns the id of the menu to update.
func (c UpdateMenuCommand) MenuID() kernel.UUID { return c.menuID }

// RemoveMenuCommand represents a request to delete a menu.
type RemoveMenuCommand struct {
	menuID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveMenuCommand creates a command to remove a menu.
func NewRemoveMenuCommand(menuID kernel.UUID) (RemoveMenuCommand, error) {
	if err := menuID.Validate(); err != nil {
		return RemoveMenuCommand{}, err
	}

	return RemoveMenuCommand{
		menuID: menuID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMenuCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMenuCommandIsNotConstructed)
}

// MenuID returns the id of the menu to remove.
func (c RemoveMenuCommand) MenuID() kernel.UUID { return c.menuID }
