package cmd

import (
	"log/slog"

	httpserver "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/catalogrepo"
	"restaurant/internal/adapters/out/postgres/customerorderrepo"
	"restaurant/internal/adapters/out/postgres/productionrepo"
	"restaurant/internal/adapters/out/postgres/registryrepo"
	"restaurant/internal/adapters/out/postgres/stockrepo"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters into the use case handlers. All
// construction happens here; the rest of the application receives its
// dependencies ready-made.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// MigrateDatabase creates or updates the schema for every persisted
// aggregate and read model.
func (c *CompositionRoot) MigrateDatabase() error {
	return c.gormDB.AutoMigrate(
		&catalogrepo.FoodGroupDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.PreparationTypeDTO{},
		&catalogrepo.PreparedItemDTO{},
		&catalogrepo.MenuDTO{},
		&catalogrepo.MenuItemDTO{},
		&registryrepo.NeighborhoodDTO{},
		&registryrepo.ClientDTO{},
		&registryrepo.DeliveryPersonDTO{},
		&registryrepo.CollaboratorDTO{},
		&stockrepo.MovementDTO{},
		&productionrepo.OrderDTO{},
		&productionrepo.ItemDTO{},
		&customerorderrepo.OrderDTO{},
		&customerorderrepo.ItemDTO{},
	)
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) registryUoWFactory() commands.RegistryUoWFactory {
	return FuncRegistryUoWFactory(func() commands.RegistryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) stockUoWFactory() commands.StockUoWFactory {
	return FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productionUoWFactory() commands.ProductionUoWFactory {
	return FuncProductionUoWFactory(func() commands.ProductionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerOrderUoWFactory() commands.CustomerOrderUoWFactory {
	return FuncCustomerOrderUoWFactory(func() commands.CustomerOrderUoW {
		return c.uowFactory.Create()
	})
}

// CreateCommandHandlers builds the full write-side handler set for the
// HTTP server.
func (c *CompositionRoot) CreateCommandHandlers() httpserver.CommandHandlers {
	catalog := c.catalogUoWFactory()
	registry := c.registryUoWFactory()
	stock := c.stockUoWFactory()
	production := c.productionUoWFactory()
	customerOrder := c.customerOrderUoWFactory()

	return httpserver.CommandHandlers{
		CreateProduct: commands.NewCreateProductCommandHandler(catalog),
		UpdateProduct: commands.NewUpdateProductCommandHandler(catalog),
		RemoveProduct: commands.NewRemoveProductCommandHandler(catalog),

		CreateFoodGroup: commands.NewCreateFoodGroupCommandHandler(catalog),
		UpdateFoodGroup: commands.NewUpdateFoodGroupCommandHandler(catalog),
		RemoveFoodGroup: commands.NewRemoveFoodGroupCommandHandler(catalog),

		CreatePreparationType: commands.NewCreatePreparationTypeCommandHandler(catalog),
		UpdatePreparationType: commands.NewUpdatePreparationTypeCommandHandler(catalog),
		RemovePreparationType: commands.NewRemovePreparationTypeCommandHandler(catalog),

		CreatePreparedItem: commands.NewCreatePreparedItemCommandHandler(catalog),
		UpdatePreparedItem: commands.NewUpdatePreparedItemCommandHandler(catalog),
		RemovePreparedItem: commands.NewRemovePreparedItemCommandHandler(catalog),

		CreateMenu: commands.NewCreateMenuCommandHandler(catalog),
		UpdateMenu: commands.NewUpdateMenuCommandHandler(catalog),
		RemoveMenu: commands.NewRemoveMenuCommandHandler(catalog),

		CreateNeighborhood: commands.NewCreateNeighborhoodCommandHandler(registry),
		UpdateNeighborhood: commands.NewUpdateNeighborhoodCommandHandler(registry),
		RemoveNeighborhood: commands.NewRemoveNeighborhoodCommandHandler(registry),

		CreateClient: commands.NewCreateClientCommandHandler(registry),
		UpdateClient: commands.NewUpdateClientCommandHandler(registry),
		RemoveClient: commands.NewRemoveClientCommandHandler(registry),

		CreateDeliveryPerson: commands.NewCreateDeliveryPersonCommandHandler(registry),
		UpdateDeliveryPerson: commands.NewUpdateDeliveryPersonCommandHandler(registry),
		RemoveDeliveryPerson: commands.NewRemoveDeliveryPersonCommandHandler(registry),

		CreateCollaborator: commands.NewCreateCollaboratorCommandHandler(registry),
		UpdateCollaborator: commands.NewUpdateCollaboratorCommandHandler(registry),
		RemoveCollaborator: commands.NewRemoveCollaboratorCommandHandler(registry),

		RecordStockMovement: commands.NewRecordStockMovementCommandHandler(stock),
		RemoveStockMovement: commands.NewRemoveStockMovementCommandHandler(stock),

		CreateProductionOrder:  commands.NewCreateProductionOrderCommandHandler(production),
		UpdateProductionOrder:  commands.NewUpdateProductionOrderCommandHandler(production),
		RemoveProductionOrder:  commands.NewRemoveProductionOrderCommandHandler(production),
		ProcessProductionOrder: commands.NewProcessProductionOrderCommandHandler(production),

		CreateCustomerOrder:  commands.NewCreateCustomerOrderCommandHandler(customerOrder),
		UpdateCustomerOrder:  commands.NewUpdateCustomerOrderCommandHandler(customerOrder),
		RemoveCustomerOrder:  commands.NewRemoveCustomerOrderCommandHandler(customerOrder),
		StartOrderProduction: commands.NewStartOrderProductionCommandHandler(customerOrder),
		MarkOrderReady:       commands.NewMarkOrderReadyCommandHandler(customerOrder),
		StartOrderDelivery:   commands.NewStartOrderDeliveryCommandHandler(customerOrder),
		CompleteOrder:        commands.NewCompleteOrderCommandHandler(customerOrder),
	}
}

// CreateQueryHandlers builds the full read-side handler set for the
// HTTP server.
func (c *CompositionRoot) CreateQueryHandlers() httpserver.QueryHandlers {
	return httpserver.QueryHandlers{
		GetProduct:              queries.NewGetProductQueryHandler(c.gormDB),
		GetAllProducts:          queries.NewGetAllProductsQueryHandler(c.gormDB),
		GetProductsBelowMinimum: queries.NewGetProductsBelowMinimumQueryHandler(c.gormDB),

		GetFoodGroup:     queries.NewGetFoodGroupQueryHandler(c.gormDB),
		GetAllFoodGroups: queries.NewGetAllFoodGroupsQueryHandler(c.gormDB),

		GetPreparationType:     queries.NewGetPreparationTypeQueryHandler(c.gormDB),
		GetAllPreparationTypes: queries.NewGetAllPreparationTypesQueryHandler(c.gormDB),

		GetPreparedItem:     queries.NewGetPreparedItemQueryHandler(c.gormDB),
		GetAllPreparedItems: queries.NewGetAllPreparedItemsQueryHandler(c.gormDB),

		GetMenu:     queries.NewGetMenuQueryHandler(c.gormDB),
		GetAllMenus: queries.NewGetAllMenusQueryHandler(c.gormDB),

		GetNeighborhood:     queries.NewGetNeighborhoodQueryHandler(c.gormDB),
		GetAllNeighborhoods: queries.NewGetAllNeighborhoodsQueryHandler(c.gormDB),

		GetClient:     queries.NewGetClientQueryHandler(c.gormDB),
		GetAllClients: queries.NewGetAllClientsQueryHandler(c.gormDB),

		GetDeliveryPerson:    queries.NewGetDeliveryPersonQueryHandler(c.gormDB),
		GetAllDeliveryPeople: queries.NewGetAllDeliveryPeopleQueryHandler(c.gormDB),

		GetCollaborator:     queries.NewGetCollaboratorQueryHandler(c.gormDB),
		GetAllCollaborators: queries.NewGetAllCollaboratorsQueryHandler(c.gormDB),

		GetStockMovement:      queries.NewGetStockMovementQueryHandler(c.gormDB),
		GetMovementsByProduct: queries.NewGetMovementsByProductQueryHandler(c.gormDB),
		GetMovementsByKind:    queries.NewGetMovementsByKindQueryHandler(c.gormDB),
		GetDiscardedMovements: queries.NewGetDiscardedMovementsQueryHandler(c.gormDB),

		GetProductionOrder:   queries.NewGetProductionOrderQueryHandler(c.gormDB),
		ListProductionOrders: queries.NewListProductionOrdersQueryHandler(c.gormDB),
		GetProductionReport:  queries.NewGetProductionReportQueryHandler(c.gormDB),
		GetProducedTotals:    queries.NewGetProducedTotalsQueryHandler(c.gormDB),

		GetCustomerOrder:   queries.NewGetCustomerOrderQueryHandler(c.gormDB),
		ListCustomerOrders: queries.NewListCustomerOrdersQueryHandler(c.gormDB),
		GetOrderLeadTimes:  queries.NewGetOrderLeadTimesQueryHandler(c.gormDB),
	}
}

// CreateServer builds the HTTP server with every handler wired.
func (c *CompositionRoot) CreateServer() *httpserver.Server {
	return httpserver.NewServer(c.CreateCommandHandlers(), c.CreateQueryHandlers())
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(queries.NewGetProductsBelowMinimumQueryHandler(c.gormDB), logger)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncRegistryUoWFactory func() commands.RegistryUoW

func (f FuncRegistryUoWFactory) Create() commands.RegistryUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncProductionUoWFactory func() commands.ProductionUoW

func (f FuncProductionUoWFactory) Create() commands.ProductionUoW {
	return f()
}

type FuncCustomerOrderUoWFactory func() commands.CustomerOrderUoW

func (f FuncCustomerOrderUoWFactory) Create() commands.CustomerOrderUoW {
	return f()
}
