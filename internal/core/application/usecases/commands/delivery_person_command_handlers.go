package commands

import (
	"context"

	"restaurant/internal/core/domain/model/registry"
)

// CreateDeliveryPersonCommandHandler registers delivery people.
type CreateDeliveryPersonCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewCreateDeliveryPersonCommandHandler creates a handler for delivery
// person creation.
func NewCreateDeliveryPersonCommandHandler(uowFactory RegistryUoWFactory) CreateDeliveryPersonCommandHandler {
	return CreateDeliveryPersonCommandHandler{uowFactory: uowFactory}
}

// Handle validates and persists the new delivery person.
func (h *CreateDeliveryPersonCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryPersonCommand,
) (*registry.DeliveryPerson, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	person, err := registry.NewDeliveryPerson(cmd.PersonID(), cmd.name, cmd.identityCard, cmd.taxID, cmd.phone)
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

	if err = uow.DeliveryPersonRepository().Add(ctx, person); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return person, nil
}

// UpdateDeliveryPersonCommandHandler replaces delivery person
// attributes.
type UpdateDeliveryPersonCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewUpdateDeliveryPersonCommandHandler creates a handler for delivery
// person updates.
func NewUpdateDeliveryPersonCommandHandler(uowFactory RegistryUoWFactory) UpdateDeliveryPersonCommandHandler {
	return UpdateDeliveryPersonCommandHandler{uowFactory: uowFactory}
}

// Handle rebuilds the delivery person under its existing identity and
// persists it. An unknown id fails with ObjectNotFoundError.
func (h *UpdateDeliveryPersonCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateDeliveryPersonCommand,
) (*registry.DeliveryPerson, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	person, err := registry.NewDeliveryPerson(cmd.PersonID(), cmd.name, cmd.identityCard, cmd.taxID, cmd.phone)
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

	personRepo := uow.DeliveryPersonRepository()
	if _, err = personRepo.Get(ctx, cmd.PersonID()); err != nil {
		return nil, err
	}

	if err = personRepo.Update(ctx, person); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return person, nil
}

// RemoveDeliveryPersonCommandHandler deletes delivery people.
type RemoveDeliveryPersonCommandHandler struct {
	uowFactory RegistryUoWFactory
}

// NewRemoveDeliveryPersonCommandHandler creates a handler for delivery
// person removal.
func NewRemoveDeliveryPersonCommandHandler(uowFactory RegistryUoWFactory) RemoveDeliveryPersonCommandHandler {
	return RemoveDeliveryPersonCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the delivery person. An unknown id fails with
// ObjectNotFoundError.
func (h *RemoveDeliveryPersonCommandHandler) Handle(ctx context.Context, cmd RemoveDeliveryPersonCommand) error {
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

	if err := uow.DeliveryPersonRepository().Remove(ctx, cmd.PersonID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
