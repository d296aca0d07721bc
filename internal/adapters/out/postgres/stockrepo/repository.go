package stockrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/stock"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates
// modified within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormStockMovementRepository implements StockMovementRepository using
// GORM.
type GormStockMovementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormStockMovementRepository creates a new GORM stock movement
// repository.
func NewGormStockMovementRepository(db *gorm.DB, tracker aggregateTracker) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db, tracker: tracker}
}

// Add appends one movement to the ledger.
func (r *GormStockMovementRepository) Add(ctx context.Context, movement *stock.Movement) error {
	if err := movement.Validate(); err != nil {
		return err
	}

	dto := fromDomain(movement)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(movement.ID(), movement)
	return nil
}

// AddAll appends a batch of movements in a single insert so a
// production order's consumption debits land together.
func (r *GormStockMovementRepository) AddAll(ctx context.Context, movements []*stock.Movement) error {
	if len(movements) == 0 {
		return nil
	}

	dtos := make([]MovementDTO, 0, len(movements))
	for _, movement := range movements {
		if err := movement.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(movement))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return err
	}

	for _, movement := range movements {
		r.tracker.TrackAggregate(movement.ID(), movement)
	}
	return nil
}

// Get retrieves a movement by id.
func (r *GormStockMovementRepository) Get(ctx context.Context, id kernel.UUID) (*stock.Movement, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MovementDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock_movement_id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Remove deletes a movement by id, reversing its ledger effect.
func (r *GormStockMovementRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MovementDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stock_movement_id", id)
	}

	return nil
}
