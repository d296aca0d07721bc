package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and hands out repositories bound to the current
// transaction. Client code must explicitly manage the transaction
// lifecycle: Begin, then Commit or Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	ProductRepository() ProductRepository
	FoodGroupRepository() FoodGroupRepository
	PreparationTypeRepository() PreparationTypeRepository
	PreparedItemRepository() PreparedItemRepository
	MenuRepository() MenuRepository

	NeighborhoodRepository() NeighborhoodRepository
	ClientRepository() ClientRepository
	DeliveryPersonRepository() DeliveryPersonRepository
	CollaboratorRepository() CollaboratorRepository

	StockMovementRepository() StockMovementRepository
	ProductionOrderRepository() ProductionOrderRepository
	CustomerOrderRepository() CustomerOrderRepository
}
