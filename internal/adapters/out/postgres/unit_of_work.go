// Package postgres provides the GORM-based implementation of the Unit
// of Work pattern. A unit of work spans one business transaction: every
// repository handed out while a transaction is open runs inside it, so
// a production order's state flip and its consumption debits commit or
// roll back together.
package postgres

import (
	"context"

	"restaurant/internal/adapters/out/postgres/catalogrepo"
	"restaurant/internal/adapters/out/postgres/customerorderrepo"
	"restaurant/internal/adapters/out/postgres/productionrepo"
	"restaurant/internal/adapters/out/postgres/registryrepo"
	"restaurant/internal/adapters/out/postgres/stockrepo"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate records an aggregate modified during the unit of
// work, available after commit for outbox or event publication.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each business operation gets a fresh instance with
// its own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of
// work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the
// repositories it hands out and tracks the aggregates they modify.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates the transaction. Calling Begin again on an open unit
// of work is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the open transaction, or the pool when none is active.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// ProductRepository provides product persistence within the unit of
// work.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return catalogrepo.NewGormProductRepository(uow.conn(), uow)
}

// FoodGroupRepository provides food group persistence within the unit
// of work.
func (uow *GormUnitOfWork) FoodGroupRepository() ports.FoodGroupRepository {
	return catalogrepo.NewGormFoodGroupRepository(uow.conn(), uow)
}

// PreparationTypeRepository provides preparation type persistence
// within the unit of work.
func (uow *GormUnitOfWork) PreparationTypeRepository() ports.PreparationTypeRepository {
	return catalogrepo.NewGormPreparationTypeRepository(uow.conn(), uow)
}

// PreparedItemRepository provides prepared item persistence within the
// unit of work.
func (uow *GormUnitOfWork) PreparedItemRepository() ports.PreparedItemRepository {
	return catalogrepo.NewGormPreparedItemRepository(uow.conn(), uow)
}

// MenuRepository provides menu persistence within the unit of work.
func (uow *GormUnitOfWork) MenuRepository() ports.MenuRepository {
	return catalogrepo.NewGormMenuRepository(uow.conn(), uow)
}

// NeighborhoodRepository provides neighborhood persistence within the
// unit of work.
func (uow *GormUnitOfWork) NeighborhoodRepository() ports.NeighborhoodRepository {
	return registryrepo.NewGormNeighborhoodRepository(uow.conn(), uow)
}

// ClientRepository provides client persistence within the unit of work.
func (uow *GormUnitOfWork) ClientRepository() ports.ClientRepository {
	return registryrepo.NewGormClientRepository(uow.conn(), uow)
}

// DeliveryPersonRepository provides delivery person persistence within
// the unit of work.
func (uow *GormUnitOfWork) DeliveryPersonRepository() ports.DeliveryPersonRepository {
	return registryrepo.NewGormDeliveryPersonRepository(uow.conn(), uow)
}

// CollaboratorRepository provides collaborator persistence within the
// unit of work.
func (uow *GormUnitOfWork) CollaboratorRepository() ports.CollaboratorRepository {
	return registryrepo.NewGormCollaboratorRepository(uow.conn(), uow)
}

// StockMovementRepository provides stock ledger persistence within the
// unit of work.
func (uow *GormUnitOfWork) StockMovementRepository() ports.StockMovementRepository {
	return stockrepo.NewGormStockMovementRepository(uow.conn(), uow)
}

// ProductionOrderRepository provides production order persistence
// within the unit of work.
func (uow *GormUnitOfWork) ProductionOrderRepository() ports.ProductionOrderRepository {
	return productionrepo.NewGormProductionOrderRepository(uow.conn(), uow)
}

// CustomerOrderRepository provides customer order persistence within
// the unit of work.
func (uow *GormUnitOfWork) CustomerOrderRepository() ports.CustomerOrderRepository {
	return customerorderrepo.NewGormCustomerOrderRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this
// unit of work. Called by the repository implementations.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
