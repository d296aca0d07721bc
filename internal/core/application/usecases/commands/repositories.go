// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers declare the narrowest facade that covers the
// repositories they touch; the composition root adapts the full
// ports.UnitOfWork to each facade.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository
	// within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// FoodGroupRepoFactory provides access to the food group repository
	// within a transaction.
	FoodGroupRepoFactory interface {
		FoodGroupRepository() ports.FoodGroupRepository
	}

	// PreparationTypeRepoFactory provides access to the preparation type
	// repository within a transaction.
	PreparationTypeRepoFactory interface {
		PreparationTypeRepository() ports.PreparationTypeRepository
	}

	// PreparedItemRepoFactory provides access to the prepared item
	// repository within a transaction.
	PreparedItemRepoFactory interface {
		PreparedItemRepository() ports.PreparedItemRepository
	}

	// MenuRepoFactory provides access to the menu repository within a
	// transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// NeighborhoodRepoFactory provides access to the neighborhood
	// repository within a transaction.
	NeighborhoodRepoFactory interface {
		NeighborhoodRepository() ports.NeighborhoodRepository
	}

	// ClientRepoFactory provides access to the client repository within
	// a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// DeliveryPersonRepoFactory provides access to the delivery person
	// repository within a transaction.
	DeliveryPersonRepoFactory interface {
		DeliveryPersonRepository() ports.DeliveryPersonRepository
	}

	// CollaboratorRepoFactory provides access to the collaborator
	// repository within a transaction.
	CollaboratorRepoFactory interface {
		CollaboratorRepository() ports.CollaboratorRepository
	}

	// StockMovementRepoFactory provides access to the stock movement
	// repository within a transaction.
	StockMovementRepoFactory interface {
		StockMovementRepository() ports.StockMovementRepository
	}

	// ProductionOrderRepoFactory provides access to the production order
	// repository within a transaction.
	ProductionOrderRepoFactory interface {
		ProductionOrderRepository() ports.ProductionOrderRepository
	}

	// CustomerOrderRepoFactory provides access to the customer order
	// repository within a transaction.
	CustomerOrderRepoFactory interface {
		CustomerOrderRepository() ports.CustomerOrderRepository
	}

	// CatalogUoW manages transactions for catalog master data: products,
	// food groups, preparation types, prepared items and menus. The
	// catalog commands cross-check references inside this one facade.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
		FoodGroupRepoFactory
		PreparationTypeRepoFactory
		PreparedItemRepoFactory
		MenuRepoFactory
	}

	// CatalogUoWFactory creates catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// RegistryUoW manages transactions for registry master data:
	// neighborhoods, clients, delivery people and collaborators.
	RegistryUoW interface {
		TxManager
		NeighborhoodRepoFactory
		ClientRepoFactory
		DeliveryPersonRepoFactory
		CollaboratorRepoFactory
	}

	// RegistryUoWFactory creates registry unit of work instances.
	RegistryUoWFactory interface {
		Create() RegistryUoW
	}

	// StockUoW manages transactions for the stock ledger. The product
	// repository is present so movement commands can resolve the
	// product the movement applies to.
	StockUoW interface {
		TxManager
		StockMovementRepoFactory
		ProductRepoFactory
	}

	// StockUoWFactory creates stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// ProductionUoW manages transactions for production orders.
	// Processing an order writes stock movements in the same
	// transaction as the order's state change.
	ProductionUoW interface {
		TxManager
		ProductionOrderRepoFactory
		MenuRepoFactory
		PreparedItemRepoFactory
		StockMovementRepoFactory
	}

	// ProductionUoWFactory creates production unit of work instances.
	ProductionUoWFactory interface {
		Create() ProductionUoW
	}

	// CustomerOrderUoW manages transactions for customer orders and the
	// references their commands resolve: clients, delivery people and
	// prepared items.
	CustomerOrderUoW interface {
		TxManager
		CustomerOrderRepoFactory
		ClientRepoFactory
		DeliveryPersonRepoFactory
		PreparedItemRepoFactory
	}

	// CustomerOrderUoWFactory creates customer order unit of work instances.
	CustomerOrderUoWFactory interface {
		Create() CustomerOrderUoW
	}
)
