package http

import (
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles every write-side handler the server routes
// to. The composition root fills it once at startup.
type CommandHandlers struct {
	CreateProduct commands.CreateProductCommandHandler
	UpdateProduct commands.UpdateProductCommandHandler
	RemoveProduct commands.RemoveProductCommandHandler

	CreateFoodGroup commands.CreateFoodGroupCommandHandler
	UpdateFoodGroup commands.UpdateFoodGroupCommandHandler
	RemoveFoodGroup commands.RemoveFoodGroupCommandHandler

	CreatePreparationType commands.CreatePreparationTypeCommandHandler
	UpdatePreparationType commands.UpdatePreparationTypeCommandHandler
	RemovePreparationType commands.RemovePreparationTypeCommandHandler

	CreatePreparedItem commands.CreatePreparedItemCommandHandler
	UpdatePreparedItem commands.UpdatePreparedItemCommandHandler
	RemovePreparedItem commands.RemovePreparedItemCommandHandler

	CreateMenu commands.CreateMenuCommandHandler
	UpdateMenu commands.UpdateMenuCommandHandler
	RemoveMenu commands.RemoveMenuCommandHandler

	CreateNeighborhood commands.CreateNeighborhoodCommandHandler
	UpdateNeighborhood commands.UpdateNeighborhoodCommandHandler
	RemoveNeighborhood commands.RemoveNeighborhoodCommandHandler

	CreateClient commands.CreateClientCommandHandler
	UpdateClient commands.UpdateClientCommandHandler
	RemoveClient commands.RemoveClientCommandHandler

	CreateDeliveryPerson commands.CreateDeliveryPersonCommandHandler
	UpdateDeliveryPerson commands.UpdateDeliveryPersonCommandHandler
	RemoveDeliveryPerson commands.RemoveDeliveryPersonCommandHandler

	CreateCollaborator commands.CreateCollaboratorCommandHandler
	UpdateCollaborator commands.UpdateCollaboratorCommandHandler
	RemoveCollaborator commands.RemoveCollaboratorCommandHandler

	RecordStockMovement commands.RecordStockMovementCommandHandler
	RemoveStockMovement commands.RemoveStockMovementCommandHandler

	CreateProductionOrder  commands.CreateProductionOrderCommandHandler
	UpdateProductionOrder  commands.UpdateProductionOrderCommandHandler
	RemoveProductionOrder  commands.RemoveProductionOrderCommandHandler
	ProcessProductionOrder commands.ProcessProductionOrderCommandHandler

	CreateCustomerOrder  commands.CreateCustomerOrderCommandHandler
	UpdateCustomerOrder  commands.UpdateCustomerOrderCommandHandler
	RemoveCustomerOrder  commands.RemoveCustomerOrderCommandHandler
	StartOrderProduction commands.StartOrderProductionCommandHandler
	MarkOrderReady       commands.MarkOrderReadyCommandHandler
	StartOrderDelivery   commands.StartOrderDeliveryCommandHandler
	CompleteOrder        commands.CompleteOrderCommandHandler
}

// QueryHandlers bundles every read-side handler.
type QueryHandlers struct {
	GetProduct              queries.GetProductQueryHandler
	GetAllProducts          queries.GetAllProductsQueryHandler
	GetProductsBelowMinimum queries.GetProductsBelowMinimumQueryHandler

	GetFoodGroup     queries.GetFoodGroupQueryHandler
	GetAllFoodGroups queries.GetAllFoodGroupsQueryHandler

	GetPreparationType     queries.GetPreparationTypeQueryHandler
	GetAllPreparationTypes queries.GetAllPreparationTypesQueryHandler

	GetPreparedItem     queries.GetPreparedItemQueryHandler
	GetAllPreparedItems queries.GetAllPreparedItemsQueryHandler

	GetMenu     queries.GetMenuQueryHandler
	GetAllMenus queries.GetAllMenusQueryHandler

	GetNeighborhood     queries.GetNeighborhoodQueryHandler
	GetAllNeighborhoods queries.GetAllNeighborhoodsQueryHandler

	GetClient     queries.GetClientQueryHandler
	GetAllClients queries.GetAllClientsQueryHandler

	GetDeliveryPerson    queries.GetDeliveryPersonQueryHandler
	GetAllDeliveryPeople queries.GetAllDeliveryPeopleQueryHandler

	GetCollaborator     queries.GetCollaboratorQueryHandler
	GetAllCollaborators queries.GetAllCollaboratorsQueryHandler

	GetStockMovement      queries.GetStockMovementQueryHandler
	GetMovementsByProduct queries.GetMovementsByProductQueryHandler
	GetMovementsByKind    queries.GetMovementsByKindQueryHandler
	GetDiscardedMovements queries.GetDiscardedMovementsQueryHandler

	GetProductionOrder   queries.GetProductionOrderQueryHandler
	ListProductionOrders queries.ListProductionOrdersQueryHandler
	GetProductionReport  queries.GetProductionReportQueryHandler
	GetProducedTotals    queries.GetProducedTotalsQueryHandler

	GetCustomerOrder   queries.GetCustomerOrderQueryHandler
	ListCustomerOrders queries.ListCustomerOrdersQueryHandler
	GetOrderLeadTimes  queries.GetOrderLeadTimesQueryHandler
}

// Server is the HTTP transport. It owns no business logic: every
// endpoint builds a command or query and hands it to the matching
// handler.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
}

func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers) *Server {
	return &Server{commands: commandHandlers, queries: queryHandlers}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	products := e.Group("/products")
	products.POST("", s.createProduct)
	products.GET("", s.listProducts)
	products.GET("/below-minimum", s.listProductsBelowMinimum)
	products.GET("/:id", s.getProduct)
	products.PUT("/:id", s.updateProduct)
	products.DELETE("/:id", s.removeProduct)
	products.GET("/:id/stock-movements", s.listProductStockMovements)

	foodGroups := e.Group("/food-groups")
	foodGroups.POST("", s.createFoodGroup)
	foodGroups.GET("", s.listFoodGroups)
	foodGroups.GET("/:id", s.getFoodGroup)
	foodGroups.PUT("/:id", s.updateFoodGroup)
	foodGroups.DELETE("/:id", s.removeFoodGroup)

	preparationTypes := e.Group("/preparation-types")
	preparationTypes.POST("", s.createPreparationType)
	preparationTypes.GET("", s.listPreparationTypes)
	preparationTypes.GET("/:id", s.getPreparationType)
	preparationTypes.PUT("/:id", s.updatePreparationType)
	preparationTypes.DELETE("/:id", s.removePreparationType)

	preparedItems := e.Group("/prepared-items")
	preparedItems.POST("", s.createPreparedItem)
	preparedItems.GET("", s.listPreparedItems)
	preparedItems.GET("/:id", s.getPreparedItem)
	preparedItems.PUT("/:id", s.updatePreparedItem)
	preparedItems.DELETE("/:id", s.removePreparedItem)

	menus := e.Group("/menus")
	menus.POST("", s.createMenu)
	menus.GET("", s.listMenus)
	menus.GET("/:id", s.getMenu)
	menus.PUT("/:id", s.updateMenu)
	menus.DELETE("/:id", s.removeMenu)

	neighborhoods := e.Group("/neighborhoods")
	neighborhoods.POST("", s.createNeighborhood)
	neighborhoods.GET("", s.listNeighborhoods)
	neighborhoods.GET("/:id", s.getNeighborhood)
	neighborhoods.PUT("/:id", s.updateNeighborhood)
	neighborhoods.DELETE("/:id", s.removeNeighborhood)

	clients := e.Group("/clients")
	clients.POST("", s.createClient)
	clients.GET("", s.listClients)
	clients.GET("/:id", s.getClient)
	clients.PUT("/:id", s.updateClient)
	clients.DELETE("/:id", s.removeClient)

	deliveryPeople := e.Group("/delivery-people")
	deliveryPeople.POST("", s.createDeliveryPerson)
	deliveryPeople.GET("", s.listDeliveryPeople)
	deliveryPeople.GET("/:id", s.getDeliveryPerson)
	deliveryPeople.PUT("/:id", s.updateDeliveryPerson)
	deliveryPeople.DELETE("/:id", s.removeDeliveryPerson)

	collaborators := e.Group("/collaborators")
	collaborators.POST("", s.createCollaborator)
	collaborators.GET("", s.listCollaborators)
	collaborators.GET("/:id", s.getCollaborator)
	collaborators.PUT("/:id", s.updateCollaborator)
	collaborators.DELETE("/:id", s.removeCollaborator)

	stockMovements := e.Group("/stock-movements")
	stockMovements.POST("", s.recordStockMovement)
	stockMovements.GET("", s.listStockMovements)
	stockMovements.GET("/discarded", s.listDiscardedMovements)
	stockMovements.GET("/:id", s.getStockMovement)
	stockMovements.DELETE("/:id", s.removeStockMovement)

	productionOrders := e.Group("/production-orders")
	productionOrders.POST("", s.createProductionOrder)
	productionOrders.GET("", s.listProductionOrders)
	productionOrders.GET("/report", s.getProductionReport)
	productionOrders.GET("/produced-totals", s.getProducedTotals)
	productionOrders.GET("/:id", s.getProductionOrder)
	productionOrders.PUT("/:id", s.updateProductionOrder)
	productionOrders.DELETE("/:id", s.removeProductionOrder)
	productionOrders.POST("/:id/process", s.processProductionOrder)

	orders := e.Group("/orders")
	orders.POST("", s.createCustomerOrder)
	orders.GET("", s.listCustomerOrders)
	orders.GET("/metrics/lead-times", s.getOrderLeadTimes)
	orders.GET("/:id", s.getCustomerOrder)
	orders.PUT("/:id", s.updateCustomerOrder)
	orders.DELETE("/:id", s.removeCustomerOrder)
	orders.POST("/:id/production", s.startOrderProduction)
	orders.POST("/:id/ready", s.markOrderReady)
	orders.POST("/:id/delivery", s.startOrderDelivery)
	orders.POST("/:id/completed", s.completeOrder)
}
