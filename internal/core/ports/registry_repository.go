package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/registry"
)

// NeighborhoodRepository defines the persistence contract for delivery
// neighborhoods.
type NeighborhoodRepository interface {
	Add(ctx context.Context, neighborhood *registry.Neighborhood) error
	Update(ctx context.Context, neighborhood *registry.Neighborhood) error
	Get(ctx context.Context, id kernel.UUID) (*registry.Neighborhood, error)
	Remove(ctx context.Context, id kernel.UUID) error
}

// ClientRepository defines the persistence contract for clients.
type ClientRepository interface {
	Add(ctx context.Context, client *registry.Client) error
	Update(ctx context.Context, client *registry.Client) error
	Get(ctx context.Context, id kernel.UUID) (*registry.Client, error)
	Remove(ctx context.Context, id kernel.UUID) error
}

// DeliveryPersonRepository defines the persistence contract for
// delivery people.
type DeliveryPersonRepository interface {
	Add(ctx context.Context, person *registry.DeliveryPerson) error
	Update(ctx context.Context, person *registry.DeliveryPerson) error
	Get(ctx context.Context, id kernel.UUID) (*registry.DeliveryPerson, error)
	Remove(ctx context.Context, id kernel.UUID) error
}

// CollaboratorRepository defines the persistence contract for kitchen
// and counter collaborators.
type CollaboratorRepository interface {
	Add(ctx context.Context, collaborator *registry.Collaborator) error
	Update(ctx context.Context, collaborator *registry.Collaborator) error
	Get(ctx context.Context, id kernel.UUID) (*registry.Collaborator, error)
	Remove(ctx context.Context, id kernel.UUID) error
}
