package registryrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/registry"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates
// modified within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormNeighborhoodRepository implements NeighborhoodRepository using
// GORM.
type GormNeighborhoodRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormNeighborhoodRepository creates a new GORM neighborhood
// repository.
func NewGormNeighborhoodRepository(db *gorm.DB, tracker aggregateTracker) *GormNeighborhoodRepository {
	return &GormNeighborhoodRepository{db: db, tracker: tracker}
}

// Add saves a new neighborhood to the database.
func (r *GormNeighborhoodRepository) Add(ctx context.Context, neighborhood *registry.Neighborhood) error {
	if err := neighborhood.Validate(); err != nil {
		return err
	}

	dto := neighborhoodFromDomain(neighborhood)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(neighborhood.ID(), neighborhood)
	return nil
}

// Update saves an existing neighborhood to the database.
func (r *GormNeighborhoodRepository) Update(ctx context.Context, neighborhood *registry.Neighborhood) error {
	if err := neighborhood.Validate(); err != nil {
		return err
	}

	dto := neighborhoodFromDomain(neighborhood)
	result := r.db.WithContext(ctx).Model(&NeighborhoodDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("neighborhood_id", neighborhood.ID())
	}

	r.tracker.TrackAggregate(neighborhood.ID(), neighborhood)
	return nil
}

// Get retrieves a neighborhood by id.
func (r *GormNeighborhoodRepository) Get(ctx context.Context, id kernel.UUID) (*registry.Neighborhood, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NeighborhoodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("neighborhood_id", id)
		}
		return nil, err
	}

	return neighborhoodToDomain(dto)
}

// Remove deletes a neighborhood by id.
func (r *GormNeighborhoodRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&NeighborhoodDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("neighborhood_id", id)
	}

	return nil
}

// GormClientRepository implements ClientRepository using GORM.
type GormClientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB, tracker aggregateTracker) *GormClientRepository {
	return &GormClientRepository{db: db, tracker: tracker}
}

// Add saves a new client to the database.
func (r *GormClientRepository) Add(ctx context.Context, client *registry.Client) error {
	if err := client.Validate(); err != nil {
		return err
	}

	dto := clientFromDomain(client)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(client.ID(), client)
	return nil
}

// Update saves an existing client to the database.
func (r *GormClientRepository) Update(ctx context.Context, client *registry.Client) error {
	if err := client.Validate(); err != nil {
		return err
	}

	dto := clientFromDomain(client)
	result := r.db.WithContext(ctx).Model(&ClientDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("client_id", client.ID())
	}

	r.tracker.TrackAggregate(client.ID(), client)
	return nil
}

// Get retrieves a client by id.
func (r *GormClientRepository) Get(ctx context.Context, id kernel.UUID) (*registry.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client_id", id)
		}
		return nil, err
	}

	return clientToDomain(dto)
}

// Remove deletes a client by id.
func (r *GormClientRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ClientDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("client_id", id)
	}

	return nil
}

// GormDeliveryPersonRepository implements DeliveryPersonRepository
// using GORM.
type GormDeliveryPersonRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDeliveryPersonRepository creates a new GORM delivery person
// repository.
func NewGormDeliveryPersonRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryPersonRepository {
	return &GormDeliveryPersonRepository{db: db, tracker: tracker}
}

// Add saves a new delivery person to the database.
func (r *GormDeliveryPersonRepository) Add(ctx context.Context, person *registry.DeliveryPerson) error {
	if err := person.Validate(); err != nil {
		return err
	}

	dto := deliveryPersonFromDomain(person)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(person.ID(), person)
	return nil
}

// Update saves an existing delivery person to the database.
func (r *GormDeliveryPersonRepository) Update(ctx context.Context, person *registry.DeliveryPerson) error {
	if err := person.Validate(); err != nil {
		return err
	}

	dto := deliveryPersonFromDomain(person)
	result := r.db.WithContext(ctx).Model(&DeliveryPersonDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery_person_id", person.ID())
	}

	r.tracker.TrackAggregate(person.ID(), person)
	return nil
}

// Get retrieves a delivery person by id.
func (r *GormDeliveryPersonRepository) Get(ctx context.Context, id kernel.UUID) (*registry.DeliveryPerson, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryPersonDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery_person_id", id)
		}
		return nil, err
	}

	return deliveryPersonToDomain(dto)
}

// Remove deletes a delivery person by id.
func (r *GormDeliveryPersonRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DeliveryPersonDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery_person_id", id)
	}

	return nil
}

// GormCollaboratorRepository implements CollaboratorRepository using
// GORM.
type GormCollaboratorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCollaboratorRepository creates a new GORM collaborator
// repository.
func NewGormCollaboratorRepository(db *gorm.DB, tracker aggregateTracker) *GormCollaboratorRepository {
	return &GormCollaboratorRepository{db: db, tracker: tracker}
}

// Add saves a new collaborator to the database.
func (r *GormCollaboratorRepository) Add(ctx context.Context, collaborator *registry.Collaborator) error {
	if err := collaborator.Validate(); err != nil {
		return err
	}

	dto := collaboratorFromDomain(collaborator)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(collaborator.ID(), collaborator)
	return nil
}

// Update saves an existing collaborator to the database.
func (r *GormCollaboratorRepository) Update(ctx context.Context, collaborator *registry.Collaborator) error {
	if err := collaborator.Validate(); err != nil {
		return err
	}

	dto := collaboratorFromDomain(collaborator)
	result := r.db.WithContext(ctx).Model(&CollaboratorDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("collaborator_id", collaborator.ID())
	}

	r.tracker.TrackAggregate(collaborator.ID(), collaborator)
	return nil
}

// Get retrieves a collaborator by id.
func (r *GormCollaboratorRepository) Get(ctx context.Context, id kernel.UUID) (*registry.Collaborator, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CollaboratorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("collaborator_id", id)
		}
		return nil, err
	}

	return collaboratorToDomain(dto)
}

// Remove deletes a collaborator by id.
func (r *GormCollaboratorRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CollaboratorDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("collaborator_id", id)
	}

	return nil
}
