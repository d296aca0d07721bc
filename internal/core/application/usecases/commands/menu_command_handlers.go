package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
)

// CreateMenuCommandHandler registers menus.
type CreateMenuCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateMenuCommandHandler creates a handler for menu creation.
func NewCreateMenuCommandHandler(uowFactory CatalogUoWFactory) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{uowFactory: uowFactory}
}

// Handle validates and persists the new menu, resolving every prepared
// item reference in the same transaction.
func (h *CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) (*catalog.Menu, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	menu, err := catalog.NewMenu(cmd.MenuID(), cmd.name, cmd.description, cmd.itemIDs)
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

	if _, err = uow.PreparedItemRepository().GetByIDs(ctx, menu.Items()); err != nil {
		return nil, err
	}

	if err = uow.MenuRepository().Add(ctx, menu); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return menu, nil
}

// UpdateMenuCommandHandler replaces menu attributes and item lists.
type UpdateMenuCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateMenuCommandHandler creates a handler for menu updates.
func NewUpdateMenuCommandHandler(uowFactory CatalogUoWFactory) UpdateMenuCommandHandler {
	return UpdateMenuCommandHandler{uowFactory: uowFactory}
}

// Handle rebuilds the menu under its existing identity and persists it.
// Unknown references fail with ObjectNotFoundError.
func (h *UpdateMenuCommandHandler) Handle(ctx context.Context, cmd UpdateMenuCommand) (*catalog.Menu, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	menu, err := catalog.NewMenu(cmd.MenuID(), cmd.name, cmd.description, cmd.itemIDs)
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

	menuRepo := uow.MenuRepository()
	if _, err = menuRepo.Get(ctx, cmd.MenuID()); err != nil {
		return nil, err
	}

	if _, err = uow.PreparedItemRepository().GetByIDs(ctx, menu.Items()); err != nil {
		return nil, err
	}

	if err = menuRepo.Update(ctx, menu); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return menu, nil
}

// RemoveMenuCommandHandler deletes menus.
type RemoveMenuCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveMenuCommandHandler creates a handler for menu removal.
func NewRemoveMenuCommandHandler(uowFactory CatalogUoWFactory) RemoveMenuCommandHandler {
	return RemoveMenuCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the menu. An unknown id fails with
// ObjectNotFoundError.
func (h *RemoveMenuCommandHandler) Handle(ctx context.Context, cmd RemoveMenuCommand) error {
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

	if err := uow.MenuRepository().Remove(ctx, cmd.MenuID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
