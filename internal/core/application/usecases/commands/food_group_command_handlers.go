package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
)

// CreateFoodGroupCommandHandler registers food groups.
type CreateFoodGroupCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateFoodGroupCommandHandler creates a handler for food group
// creation.
func NewCreateFoodGroupCommandHandler(uowFactory CatalogUoWFactory) CreateFoodGroupCommandHandler {
	return CreateFoodGroupCommandHandler{uowFactory: uowFactory}
}

// Handle validates and persists the new food group.
func (h *CreateFoodGroupCommandHandler) Handle(
	ctx context.Context,
	cmd CreateFoodGroupCommand,
) (*catalog.FoodGroup, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	group, err := catalog.NewFoodGroup(cmd.GroupID(), cmd.Name())
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

	if err = uow.FoodGroupRepository().Add(ctx, group); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return group, nil
}

// UpdateFoodGroupCommandHandler renames food groups.
type UpdateFoodGroupCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateFoodGroupCommandHandler creates a handler for food group
// updates.
func NewUpdateFoodGroupCommandHandler(uowFactory CatalogUoWFactory) UpdateFoodGroupCommandHandler {
	return UpdateFoodGroupCommandHandler{uowFactory: uowFactory}
}

// Handle rebuilds the food group under its existing identity and
// persists it. An unknown id fails with ObjectNotFoundError.
func (h *UpdateFoodGroupCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateFoodGroupCommand,
) (*catalog.FoodGroup, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	group, err := catalog.NewFoodGroup(cmd.GroupID(), cmd.Name())
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

	groupRepo := uow.FoodGroupRepository()
	if _, err = groupRepo.Get(ctx, cmd.GroupID()); err != nil {
		return nil, err
	}

	if err = groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return group, nil
}

// RemoveFoodGroupCommandHandler deletes food groups.
type RemoveFoodGroupCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveFoodGroupCommandHandler creates a handler for food group
// removal.
func NewRemoveFoodGroupCommandHandler(uowFactory CatalogUoWFactory) RemoveFoodGroupCommandHandler {
	return RemoveFoodGroupCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the food group. An unknown id fails with
// ObjectNotFoundError.
func (h *RemoveFoodGroupCommandHandler) Handle(ctx context.Context, cmd RemoveFoodGroupCommand) error {
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

	if err := uow.FoodGroupRepository().Remove(ctx, cmd.GroupID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
