package commands

import (
	"context"

	"restaurant/internal/core/domain/model/registry"
)

// CreateCollaboratorCommandHandler registers collaborators.
type CreateCollaboratorCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewCreateCollaboratorCommandHandler creates a handler for
// collaborator creation.
func NewCreateCollaboratorCommandHandler(uowFactory RegistryUoWFactory) CreateCollaboratorCommandHandler {
	return CreateCollaboratorCommandHandler{uowFactory: uowFactory}
}

// Handle validates and persists the new collaborator.
func (h *CreateCollaboratorCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCollaboratorCommand,
) (*registry.Collaborator, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	collaborator, err := registry.NewCollaborator(
		cmd.CollaboratorID(), cmd.name, cmd.identityCard, cmd.taxID, cmd.phone)
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

	if err = uow.CollaboratorRepository().Add(ctx, collaborator); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return collaborator, nil
}

// UpdateCollaboratorCommandHandler replaces collaborator attributes.
type UpdateCollaboratorCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewUpdateCollaboratorCommandHandler creates a handler for
// collaborator updates.
func NewUpdateCollaboratorCommandHandler(uowFactory RegistryUoWFactory) UpdateCollaboratorCommandHandler {
	return UpdateCollaboratorCommandHandler{uowFactory: uowFactory}
}

// Handle rebuilds the collaborator under its existing identity and
// persists it. An unknown id fails with ObjectNotFoundError.
func (h *UpdateCollaboratorCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCollaboratorCommand,
) (*registry.Collaborator, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	collaborator, err := registry.NewCollaborator(
		cmd.CollaboratorID(), cmd.name, cmd.identityCard, cmd.taxID, cmd.phone)
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

	collaboratorRepo := uow.CollaboratorRepository()
	if _, err = collaboratorRepo.Get(ctx, cmd.CollaboratorID()); err != nil {
		return nil, err
	}

	if err = collaboratorRepo.Update(ctx, collaborator); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return collaborator, nil
}

// RemoveCollaboratorCommandHandler deletes collaborators.
type RemoveCollaboratorCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewRemoveCollaboratorCommandHandler creates a handler for
// collaborator removal.
func NewRemoveCollaboratorCommandHandler(uowFactory RegistryUoWFactory) RemoveCollaboratorCommandHandler {
	return RemoveCollaboratorCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the collaborator. An unknown id fails with
// ObjectNotFoundError.
func (h *RemoveCollaboratorCommandHandler) Handle(ctx context.Context, cmd RemoveCollaboratorCommand) error {
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

	if err := uow.CollaboratorRepository().Remove(ctx, cmd.CollaboratorID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
