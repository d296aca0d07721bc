package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
)

// CreateProductCommandHandler registers catalog products.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

// Handle validates and persists the new product, resolving the food
// group reference in the same transaction. The created aggregate is
// returned for the transport layer to render.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*catalog.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(
		cmd.ProductID(), cmd.name, cmd.unitCost, cmd.minimumStock, cmd.energeticValue, cmd.foodGroupID)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.FoodGroupRepository().Get(ctx, product.FoodGroup()); err != nil {
		return nil, err
	}

	if err = uow.ProductRepository().Add(ctx, product); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProductCommandHandler replaces a product's attributes.
type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory}
}

// Handle rebuilds the product under its existing identity and persists
// it. An unknown product or food group fails with ObjectNotFoundError.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*catalog.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(
		cmd.ProductID(), cmd.name, cmd.unitCost, cmd.minimumStock, cmd.energeticValue, cmd.foodGroupID)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	if _, err = productRepo.Get(ctx, cmd.ProductID()); err != nil {
		return nil, err
	}

	if _, err = uow.FoodGroupRepository().Get(ctx, product.FoodGroup()); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return product, nil
}

// RemoveProductCommandHandler deletes catalog products.
type RemoveProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveProductCommandHandler creates a handler for product removal.
func NewRemoveProductCommandHandler(uowFactory CatalogUoWFactory) RemoveProductCommandHandler {
	return RemoveProductCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the product. An unknown id fails with
// ObjectNotFoundError.
func (h *RemoveProductCommandHandler) Handle(ctx context.Context, cmd RemoveProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Remove(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
