package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrRemoveProductCommandIsNotConstructed = errors.New(
		"RemoveProductCommand must be created via NewRemoveProductCommand constructor",
	)
)

// productFields carries the product attributes shared by the create and
// update commands. Business validation is deferred to the aggregate.
type productFields struct {
	name           string
	unitCost       decimal.Decimal
	minimumStock   int
	energeticValue int
	foodGroupID    kernel.UUID
}

// CreateProductCommand represents a request to register a product.
type CreateProductCommand struct {
	productID kernel.UUID
	productFields

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a product.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	unitCost decimal.Decimal,
	minimumStock int,
	energeticValue int,
	foodGroupID kernel.UUID,
) (CreateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		productID: productID,
		productFields: productFields{
			name:           name,
			unitCost:       unitCost,
			minimumStock:   minimumStock,
			energeticValue: energeticValue,
			foodGroupID:    foodGroupID,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identity for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }

// UpdateProductCommand represents a request to replace a product's
// attributes.
type UpdateProductCommand struct {
	productID kernel.UUID
	productFields

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a product.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name string,
	unitCost decimal.Decimal,
	minimumStock int,
	energeticValue int,
	foodGroupID kernel.UUID,
) (UpdateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID: productID,
		productFields: productFields{
			name:           name,
			unitCost:       unitCost,
			minimumStock:   minimumStock,
			energeticValue: energeticValue,
			foodGroupID:    foodGroupID,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the id of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID { return c.productID }

// RemoveProductCommand represents a request to delete a product.
type RemoveProductCommand struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveProductCommand creates a command to remove a product.
func NewRemoveProductCommand(productID kernel.UUID) (RemoveProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return RemoveProductCommand{}, err
	}

	return RemoveProductCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveProductCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProductCommandIsNotConstructed)
}

// ProductID returns the id of the product to remove.
func (c RemoveProductCommand) ProductID() kernel.UUID { return c.productID }
