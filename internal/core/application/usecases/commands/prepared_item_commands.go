package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreatePreparedItemCommandIsNotConstructed = errors.New(
		"CreatePreparedItemCommand must be created via NewCreatePreparedItemCommand constructor",
	)
	ErrUpdatePreparedItemCommandIsNotConstructed = errors.New(
		"UpdatePreparedItemCommand must be created via NewUpdatePreparedItemCommand constructor",
	)
	ErrRemovePreparedItemCommandIsNotConstructed = errors.New(
		"RemovePreparedItemCommand must be created via NewRemovePreparedItemCommand constructor",
	)
)

// preparedItemFields carries the recipe attributes shared by the create
// and update commands. Business validation is deferred to the aggregate.
type preparedItemFields struct {
	name              string
	productID         kernel.UUID
	preparationTypeID kernel.UUID
	preparationCost   decimal.Decimal
	preparationTime   int
}

// CreatePreparedItemCommand represents a request to register a recipe.
type CreatePreparedItemCommand struct {
	itemID kernel.UUID
	preparedItemFields

	guard guard.ConstructorGuard
}

// NewCreatePreparedItemCommand creates a command to register a prepared
// item.
func NewCreatePreparedItemCommand(
	itemID kernel.UUID,
	name string,
	productID kernel.UUID,
	preparationTypeID kernel.UUID,
	preparationCost decimal.Decimal,
	preparationTime int,
) (CreatePreparedItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return CreatePreparedItemCommand{}, err
	}

	return CreatePreparedItemCommand{
		itemID: itemID,
		preparedItemFields: preparedItemFields{
			name:              name,
			productID:         productID,
			preparationTypeID: preparationTypeID,
			preparationCost:   preparationCost,
			preparationTime:   preparationTime,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePreparedItemCommand) Validate() error {
	return c.guard.Validate(ErrCreatePreparedItemCommandIsNotConstructed)
}

// ItemID returns the identity for the new prepared item.
func (c CreatePreparedItemCommand) ItemID() kernel.UUID { return c.itemID }

// UpdatePreparedItemCommand represents a request to replace a recipe's
// attributes.
type UpdatePreparedItemCommand struct {
	itemID kernel.UUID
	preparedItemFields

	guard guard.ConstructorGuard
}

// NewUpdatePreparedItemCommand creates a command to update a prepared
// item.
func NewUpdatePreparedItemCommand(
	itemID kernel.UUID,
	name string,
	productID kernel.UUID,
	preparationTypeID kernel.UUID,
	preparationCost decimal.Decimal,
	preparationTime int,
) (UpdatePreparedItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return UpdatePreparedItemCommand{}, err
	}

	return UpdatePreparedItemCommand{
		itemID: itemID,
		preparedItemFields: preparedItemFields{
			name:              name,
			productID:         productID,
			preparationTypeID: preparationTypeID,
			preparationCost:   preparationCost,
			preparationTime:   preparationTime,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePreparedItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePreparedItemCommandIsNotConstructed)
}

// ItemID returns the id of the prepared item to update.
func (c UpdatePreparedItemCommand) ItemID() kernel.UUID { return c.itemID }

// RemovePreparedItemCommand represents a request to delete a recipe.
type RemovePreparedItemCommand struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemovePreparedItemCommand creates a command to remove a prepared
// item.
func NewRemovePreparedItemCommand(itemID kernel.UUID) (RemovePreparedItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return RemovePreparedItemCommand{}, err
	}

	return RemovePreparedItemCommand{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemovePreparedItemCommand) Validate() error {
	return c.guard.Validate(ErrRemovePreparedItemCommandIsNotConstructed)
}

// ItemID returns the id of the prepared item to remove.
func (c RemovePreparedItemCommand) ItemID() kernel.UUID { return c.itemID }
