package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateNeighborhoodCommandIsNotConstructed = errors.New(
		"CreateNeighborhoodCommand must be created via NewCreateNeighborhoodCommand constructor",
	)
	ErrUpdateNeighborhoodCommandIsNotConstructed = errors.New(
		"UpdateNeighborhoodCommand must be created via NewUpdateNeighborhoodCommand constructor",
	)
	ErrRemoveNeighborhoodCommandIsNotConstructed = errors.New(
		"RemoveNeighborhoodCommand must be created via NewRemoveNeighborhoodCommand constructor",
	)
)

// CreateNeighborhoodCommand represents a request to register a delivery
// neighborhood.
type CreateNeighborhoodCommand struct {
	neighborhoodID kernel.UUID
	name           string
	deliveryFee    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateNeighborhoodCommand creates a command to register a
// neighborhood.
func NewCreateNeighborhoodCommand(
	neighborhoodID kernel.UUID,
	name string,
	deliveryFee decimal.Decimal,
) (CreateNeighborhoodCommand, error) {
	if err := neighborhoodID.Validate(); err != nil {
		return CreateNeighborhoodCommand{}, err
	}

	return CreateNeighborhoodCommand{
		neighborhoodID: neighborhoodID,
		name:           name,
		deliveryFee:    deliveryFee,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateNeighborhoodCommand) Validate() error {
	return c.guard.Validate(ErrCreateNeighborhoodCommandIsNotConstructed)
}

// NeighborhoodID returns the identity for the new neighborhood.
func (c CreateNeighborhoodCommand) NeighborhoodID() kernel.UUID { return c.neighborhoodID }

// UpdateNeighborhoodCommand represents a request to replace a
// neighborhood's name and delivery fee.
type UpdateNeighborhoodCommand struct {
	neighborhoodID kernel.UUID
	name           string
	deliveryFee    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateNeighborhoodCommand creates a command to update a
// neighborhood.
func NewUpdateNeighborhoodCommand(
	neighborhoodID kernel.UUID,
	name string,
	deliveryFee decimal.Decimal,
) (UpdateNeighborhoodCommand, error) {
	if err := neighborhoodID.Validate(); err != nil {
		return UpdateNeighborhoodCommand{}, err
	}

	return UpdateNeighborhoodCommand{
		neighborhoodID: neighborhoodID,
		name:           name,
		deliveryFee:    deliveryFee,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateNeighborhoodCommand) Validate() error {
	return c.guard.Validate(ErrUpdateNeighborhoodCommandIsNotConstructed)
}

// NeighborhoodID returns the id of the neighborhood to update.
func (c UpdateNeighborhoodCommand) NeighborhoodID() kernel.UUID { return c.neighborhoodID }

// RemoveNeighborhoodCommand represents a request to delete a
// neighborhood.
type RemoveNeighborhoodCommand struct {
	neighborhoodID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveNeighborhoodCommand creates a command to remove a
// neighborhood.
func NewRemoveNeighborhoodCommand(neighborhoodID kernel.UUID) (RemoveNeighborhoodCommand, error) {
	if err := neighborhoodID.Validate(); err != nil {
		return RemoveNeighborhoodCommand{}, err
	}

	return RemoveNeighborhoodCommand{
		neighborhoodID: neighborhoodID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveNeighborhoodCommand) Validate() error {
	return c.guard.Validate(ErrRemoveNeighborhoodCommandIsNotConstructed)
}

// NeighborhoodID returns the id of the neighborhood to remove.
func (c RemoveNeighborhoodCommand) NeighborhoodID() kernel.UUID { return c.neighborhoodID }
