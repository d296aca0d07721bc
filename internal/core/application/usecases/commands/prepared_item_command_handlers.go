package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
)

// CreatePreparedItemCommandHandler registers recipes.
type CreatePreparedItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreatePreparedItemCommandHandler creates a handler for prepared
// item creation.
func NewCreatePreparedItemCommandHandler(uowFactory CatalogUoWFactory) CreatePreparedItemCommandHandler {
	return CreatePreparedItemCommandHandler{uowFactory: uowFactory}
}

// Handle validates and persists the new prepared item, resolving the
// product and preparation type references in the same transaction.
func (h *CreatePreparedItemCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePreparedItemCommand,
) (*catalog.PreparedItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := catalog.NewPreparedItem(
		cmd.ItemID(), cmd.name, cmd.productID, cmd.preparationTypeID, cmd.preparationCost, cmd.preparationTime)
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

	if err = resolvePreparedItemReferences(ctx, uow, item); err != nil {
		return nil, err
	}

	if err = uow.PreparedItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdatePreparedItemCommandHandler replaces recipe attributes.
type UpdatePreparedItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdatePreparedItemCommandHandler creates a handler for prepared
// item updates.
func NewUpdatePreparedItemCommandHandler(uowFactory CatalogUoWFactory) UpdatePreparedItemCommandHandler {
	return UpdatePreparedItemCommandHandler{uowFactory: uowFactory}
}

// Handle rebuilds the prepared item under its existing identity and
// persists it. Unknown references fail with ObjectNotFoundError.
func (h *UpdatePreparedItemCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePreparedItemCommand,
) (*catalog.PreparedItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := catalog.NewPreparedItem(
		cmd.ItemID(), cmd.name, cmd.productID, cmd.preparationTypeID, cmd.preparationCost, cmd.preparationTime)
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

	itemRepo := uow.PreparedItemRepository()
	if _, err = itemRepo.Get(ctx, cmd.ItemID()); err != nil {
		return nil, err
	}

	if err = resolvePreparedItemReferences(ctx, uow, item); err != nil {
		return nil, err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}

// resolvePreparedItemReferences checks the recipe's source product and
// preparation type exist.
func resolvePreparedItemReferences(ctx context.Context, uow CatalogUoW, item *catalog.PreparedItem) error {
	if _, err := uow.ProductRepository().Get(ctx, item.Product()); err != nil {
		return err
	}

	_, err := uow.PreparationTypeRepository().Get(ctx, item.PreparationType())
	return err
}

// RemovePreparedItemCommandHandler deletes recipes.
type RemovePreparedItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemovePreparedItemCommandHandler creates a handler for prepared
// item removal.
func NewRemovePreparedItemCommandHandler(uowFactory CatalogUoWFactory) RemovePreparedItemCommandHandler {
	return RemovePreparedItemCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the prepared item. An unknown id fails with
// ObjectNotFoundError.
func (h *RemovePreparedItemCommandHandler) Handle(ctx context.Context, cmd RemovePreparedItemCommand) error {
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

	if err := uow.PreparedItemRepository().Remove(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
