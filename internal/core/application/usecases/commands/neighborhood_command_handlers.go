package commands

import (
	"context"

	"restaurant/internal/core/domain/model/registry"
)

// CreateNeighborhoodCommandHandler registers delivery neighborhoods.
type CreateNeighborhoodCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewCreateNeighborhoodCommandHandler creates a handler for
// neighborhood creation.
func NewCreateNeighborhoodCommandHandler(uowFactory RegistryUoWFactory) CreateNeighborhoodCommandHandler {
	return CreateNeighborhoodCommandHandler{uowFactory: uowFactory}
}

// Handle validates and persists the new neighborhood.
func (h *CreateNeighborhoodCommandHandler) Handle(
	ctx context.Context,
	cmd CreateNeighborhoodCommand,
) (*registry.Neighborhood, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	neighborhood, err := registry.NewNeighborhood(cmd.NeighborhoodID(), cmd.name, cmd.deliveryFee)
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

	if err = uow.NeighborhoodRepository().Add(ctx, neighborhood); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return neighborhood, nil
}

// UpdateNeighborhoodCommandHandler replaces neighborhood attributes.
type UpdateNeighborhoodCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewUpdateNeighborhoodCommandHandler creates a handler for
// neighborhood updates.
func NewUpdateNeighborhoodCommandHandler(uowFactory RegistryUoWFactory) UpdateNeighborhoodCommandHandler {
	return UpdateNeighborhoodCommandHandler{uowFactory: uowFactory}
}

// Handle rebuilds the neighborhood under its existing identity and
// persists it. An unknown id fails with ObjectNotFoundError.
func (h *UpdateNeighborhoodCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateNeighborhoodCommand,
) (*registry.Neighborhood, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	neighborhood, err := registry.NewNeighborhood(cmd.NeighborhoodID(), cmd.name, cmd.deliveryFee)
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

	neighborhoodRepo := uow.NeighborhoodRepository()
	if _, err = neighborhoodRepo.Get(ctx, cmd.NeighborhoodID()); err != nil {
		return nil, err
	}

	if err = neighborhoodRepo.Update(ctx, neighborhood); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return neighborhood, nil
}

// RemoveNeighborhoodCommandHandler deletes neighborhoods.
type RemoveNeighborhoodCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewRemoveNeighborhoodCommandHandler creates a handler for
// neighborhood removal.
func NewRemoveNeighborhoodCommandHandler(uowFactory RegistryUoWFactory) RemoveNeighborhoodCommandHandler {
	return RemoveNeighborhoodCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the neighborhood. An unknown id fails with
// ObjectNotFoundError.
func (h *RemoveNeighborhoodCommandHandler) Handle(ctx context.Context, cmd RemoveNeighborhoodCommand) error {
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

	if err := uow.NeighborhoodRepository().Remove(ctx, cmd.NeighborhoodID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
