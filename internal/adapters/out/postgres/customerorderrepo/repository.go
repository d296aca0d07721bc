package customerorderrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/customerorder"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates
// modified within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCustomerOrderRepository implements CustomerOrderRepository using
// GORM.
type GormCustomerOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCustomerOrderRepository creates a new GORM customer order
// repository.
func NewGormCustomerOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerOrderRepository {
	return &GormCustomerOrderRepository{db: db, tracker: tracker}
}

// Add saves a new customer order and its item lines.
func (r *GormCustomerOrderRepository) Add(ctx context.Context, order *customerorder.Order) error {
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

// Update saves an existing customer order, replacing its item lines
// wholesale. Nullable transition fields are written explicitly so a
// cleared value is not silently skipped.
func (r *GormCustomerOrderRepository) Update(ctx context.Context, order *customerorder.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(order)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer_order_id", order.ID())
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

// Get retrieves a customer order with its item lines by id.
func (r *GormCustomerOrderRepository) Get(ctx context.Context, id kernel.UUID) (*customerorder.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer_order_id", id)
		}
		return nil, err
	}

	var items []ItemDTO
	if err := r.db.WithContext(ctx).Order("position").Find(&items, "order_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, items)
}

// Remove deletes a customer order and its item lines by id.
func (r *GormCustomerOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
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
		return errs.NewObjectNotFoundError("customer_order_id", id)
	}

	return nil
}
