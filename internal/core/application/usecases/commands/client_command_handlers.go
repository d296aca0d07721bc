package commands

import (
	"context"

	"restaurant/internal/core/domain/model/registry"
)

// CreateClientCommandHandler registers clients with their delivery
// addresses.
type CreateClientCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client creation.
func NewCreateClientCommandHandler(uowFactory RegistryUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{uowFactory: uowFactory}
}

// Handle validates and persists the new client, resolving the
// neighborhood reference in the same transaction.
func (h *CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) (*registry.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	client, err := registry.NewClient(
		cmd.ClientID(), cmd.name, cmd.identityCard, cmd.taxID, cmd.phone,
		cmd.street, cmd.number, cmd.neighborhoodID, cmd.referencePoint)
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

	if _, err = uow.NeighborhoodRepository().Get(ctx, client.Neighborhood()); err != nil {
		return nil, err
	}

	if err = uow.ClientRepository().Add(ctx, client); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return client, nil
}

// UpdateClientCommandHandler replaces client attributes.
type UpdateClientCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewUpdateClientCommandHandler creates a handler for client updates.
func NewUpdateClientCommandHandler(uowFactory RegistryUoWFactory) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{uowFactory: uowFactory}
}

// Handle rebuilds the client under its existing identity and persists
// it. Unknown references fail with ObjectNotFoundError.
func (h *UpdateClientCommandHandler) Handle(ctx context.Context, cmd UpdateClientCommand) (*registry.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	client, err := registry.NewClient(
		cmd.ClientID(), cmd.name, cmd.identityCard, cmd.taxID, cmd.phone,
		cmd.street, cmd.number, cmd.neighborhoodID, cmd.referencePoint)
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

	clientRepo := uow.ClientRepository()
	if _, err = clientRepo.Get(ctx, cmd.ClientID()); err != nil {
		return nil, err
	}

	if _, err = uow.NeighborhoodRepository().Get(ctx, client.Neighborhood()); err != nil {
		return nil, err
	}

	if err = clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return client, nil
}

// RemoveClientCommandHandler deletes clients.
type RemoveClientCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewRemoveClientCommandHandler creates a handler for client removal.
func NewRemoveClientCommandHandler(uowFactory RegistryUoWFactory) RemoveClientCommandHandler {
	return RemoveClientCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the client. An unknown id fails with
// ObjectNotFoundError.
func (h *RemoveClientCommandHandler) Handle(ctx context.Context, cmd RemoveClientCommand) error {
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

	if err := uow.ClientRepository().Remove(ctx, cmd.ClientID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
