package productionrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates
// modified within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormProductionOrderRepository implements ProductionOrderRepository
// using GORM.
type GormProductionOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormProductionOrderRepository creates a new GORM production order
// repository.
func NewGormProductionOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormProductionOrderRepository {
	return &GormProductionOrderRepository{db: db, tracker: tracker}
}

// Add saves a new production order and its item lines.
func (r *GormProductionOrderRepository) Add(ctx context.Context, order *production.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(order)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(order.ID(), order)
	return nil
}

// Update saves an existing production order, replacing its item lines
// wholesale.
func (r *GormProductionOrderRepository) Update(ctx context.Context, order *production.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(order)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("production_order_id", order.ID())
	}

	if err := r.db.WithContext(ctx).Delete(&ItemDTO{}, "order_id = ?", dto.ID).Error; err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(order.ID(), order)
	return nil
}

// Get retrieves a production order with its item lines by id.
func (r *GormProductionOrderRepository) Get(ctx context.Context, id kernel.UUID) (*production.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("production_order_id", id)
		}
		return nil, err
	}

	var items []ItemDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&items, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, items)
}

// Remove deletes a production order and its item lines by id.
func (r *GormProductionOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&ItemDTO{}, "order_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("production_order_id", id)
	}

	return nil
}
