// Package registryrepo persists the registry aggregates: neighborhoods,
// clients, delivery people and collaborators.
package registryrepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/registry"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NeighborhoodDTO represents the database structure for delivery
// neighborhoods.
type NeighborhoodDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName overrides GORM's default naming to "neighborhoods".
func (NeighborhoodDTO) TableName() string {
	return "neighborhoods"
}

func neighborhoodFromDomain(neighborhood *registry.Neighborhood) NeighborhoodDTO {
	return NeighborhoodDTO{
		ID:          neighborhood.ID().Bytes(),
		Name:        neighborhood.Name(),
		DeliveryFee: neighborhood.DeliveryFee(),
	}
}

func neighborhoodToDomain(dto NeighborhoodDTO) (*registry.Neighborhood, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return registry.RestoreNeighborhood(id, dto.Name, dto.DeliveryFee)
}

// ClientDTO represents the database structure for clients, including
// their delivery address.
type ClientDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	IdentityCard   string    `gorm:"type:varchar(64);not null"`
	TaxID          string    `gorm:"type:varchar(64);not null"`
	Phone          string    `gorm:"type:varchar(32);not null"`
	Street         string    `gorm:"type:varchar(255);not null"`
	Number         string    `gorm:"type:varchar(32);not null"`
	NeighborhoodID uuid.UUID `gorm:"type:uuid;index"`
	ReferencePoint string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming to "clients".
func (ClientDTO) TableName() string {
	return "clients"
}

func clientFromDomain(client *registry.Client) ClientDTO {
	return ClientDTO{
		ID:             client.ID().Bytes(),
		Name:           client.Name(),
		IdentityCard:   client.IdentityCard(),
		TaxID:          client.TaxID(),
		Phone:          client.Phone(),
		Street:         client.Street(),
		Number:         client.Number(),
		NeighborhoodID: client.Neighborhood().Bytes(),
		ReferencePoint: client.ReferencePoint(),
	}
}

func clientToDomain(dto ClientDTO) (*registry.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	neighborhoodID, err := kernel.UUIDFromBytes(dto.NeighborhoodID[:])
	if err != nil {
		return nil, err
	}

	return registry.RestoreClient(
		id, dto.Name, dto.IdentityCard, dto.TaxID, dto.Phone,
		dto.Street, dto.Number, neighborhoodID, dto.ReferencePoint)
}

// DeliveryPersonDTO represents the database structure for delivery
// people.
type DeliveryPersonDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	IdentityCard string    `gorm:"type:varchar(64);not null"`
	TaxID        string    `gorm:"type:varchar(64);not null"`
	Phone        string    `gorm:"type:varchar(32);not null"`
}

// TableName overrides GORM's default naming to "delivery_people".
func (DeliveryPersonDTO) TableName() string {
	return "delivery_people"
}

func deliveryPersonFromDomain(person *registry.DeliveryPerson) DeliveryPersonDTO {
	return DeliveryPersonDTO{
		ID:           person.ID().Bytes(),
		Name:         person.Name(),
		IdentityCard: person.IdentityCard(),
		TaxID:        person.TaxID(),
		Phone:        person.Phone(),
	}
}

func deliveryPersonToDomain(dto DeliveryPersonDTO) (*registry.DeliveryPerson, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return registry.RestoreDeliveryPerson(id, dto.Name, dto.IdentityCard, dto.TaxID, dto.Phone)
}

// CollaboratorDTO represents the database structure for collaborators.
type CollaboratorDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	IdentityCard string    `gorm:"type:varchar(64);not null"`
	TaxID        string    `gorm:"type:varchar(64);not null"`
	Phone        string    `gorm:"type:varchar(32);not null"`
}

// TableName overrides GORM's default naming to "collaborators".
func (CollaboratorDTO) TableName() string {
	return "collaborators"
}

func collaboratorFromDomain(collaborator *registry.Collaborator) CollaboratorDTO {
	return CollaboratorDTO{
		ID:           collaborator.ID().Bytes(),
		Name:         collaborator.Name(),
		IdentityCard: collaborator.IdentityCard(),
		TaxID:        collaborator.TaxID(),
		Phone:        collaborator.Phone(),
	}
}

func collaboratorToDomain(dto CollaboratorDTO) (*registry.Collaborator, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return registry.RestoreCollaborator(id, dto.Name, dto.IdentityCard, dto.TaxID, dto.Phone)
}
