package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
)

// CreatePreparationTypeCommandHandler registers preparation types.
type CreatePreparationTypeCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreatePreparationTypeCommandHandler creates a handler for
// preparation type creation.
func NewCreatePreparationTypeCommandHandler(uowFactory CatalogUoWFactory) CreatePreparationTypeCommandHandler {
	return CreatePreparationTypeCommandHandler{uowFactory: uowFactory}
}

// Handle validates and persists the new preparation type.
func (h *CreatePreparationTypeCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePreparationTypeCommand,
) (*catalog.PreparationType, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	preparationType, err := catalog.NewPreparationType(cmd.TypeID(), cmd.Description())
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

	if err = uow.PreparationTypeRepository().Add(ctx, preparationType); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return preparationType, nil
}

// UpdatePreparationTypeCommandHandler changes preparation type
// descriptions.
type UpdatePreparationTypeCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdatePreparationTypeCommandHandler creates a handler for
// preparation type updates.
func NewUpdatePreparationTypeCommandHandler(uowFactory CatalogUoWFactory) UpdatePreparationTypeCommandHandler {
	return UpdatePreparationTypeCommandHandler{uowFactory: uowFactory}
}

// Handle rebuilds the preparation type under its existing identity and
// persists it. An unknown id fails with ObjectNotFoundError.
func (h *UpdatePreparationTypeCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePreparationTypeCommand,
) (*catalog.PreparationType, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	preparationType, err := catalog.NewPreparationType(cmd.TypeID(), cmd.Description())
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

	typeRepo := uow.PreparationTypeRepository()
	if _, err = typeRepo.Get(ctx, cmd.TypeID()); err != nil {
		return nil, err
	}

	if err = typeRepo.Update(ctx, preparationType); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return preparationType, nil
}

// RemovePreparationTypeCommandHandler deletes preparation types.
type RemovePreparationTypeCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemovePreparationTypeCommandHandler creates a handler for
// preparation type removal.
func NewRemovePreparationTypeCommandHandler(uowFactory CatalogUoWFactory) RemovePreparationTypeCommandHandler {
	return RemovePreparationTypeCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the preparation type. An unknown id fails with
// ObjectNotFoundError.
func (h *RemovePreparationTypeCommandHandler) Handle(ctx context.Context, cmd RemovePreparationTypeCommand) error {
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

	if err := uow.PreparationTypeRepository().Remove(ctx, cmd.TypeID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
