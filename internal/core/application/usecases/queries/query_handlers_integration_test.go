package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/catalogrepo"
	"restaurant/internal/adapters/out/postgres/customerorderrepo"
	"restaurant/internal/adapters/out/postgres/productionrepo"
	"restaurant/internal/adapters/out/postgres/registryrepo"
	"restaurant/internal/adapters/out/postgres/stockrepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/customerorder"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"
	"restaurant/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mustKernelUUID(t *testing.T, id uuid.UUID) kernel.UUID {
	t.Helper()
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		t.Fatal(err)
	}
	return converted
}

type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (s *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	err = db.AutoMigrate(
		&catalogrepo.ProductDTO{},
		&catalogrepo.FoodGroupDTO{},
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
	s.Require().NoError(err)
}

func (s *QueryHandlersTestSuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}

func (s *QueryHandlersTestSuite) SetupTest() {
	tables := []string{
		"customer_order_items", "customer_orders",
		"production_order_items", "production_orders",
		"stock_movements", "menu_items", "menus",
		"prepared_items", "preparation_types", "products", "food_groups",
		"clients", "neighborhoods", "delivery_people", "collaborators",
	}
	for _, table := range tables {
		err := s.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error
		s.Require().NoError(err)
	}
}

func (s *QueryHandlersTestSuite) seedFoodGroup() catalogrepo.FoodGroupDTO {
	group := catalogrepo.FoodGroupDTO{ID: uuid.New(), Name: "proteins"}
	s.Require().NoError(s.db.Create(&group).Error)
	return group
}

func (s *QueryHandlersTestSuite) seedProduct(name string, minimumStock int) catalogrepo.ProductDTO {
	group := s.seedFoodGroup()
	product := catalogrepo.ProductDTO{
		ID:             uuid.New(),
		Name:           name,
		UnitCost:       decimal.NewFromFloat(4.50),
		MinimumStock:   minimumStock,
		EnergeticValue: 120,
		FoodGroupID:    group.ID,
	}
	s.Require().NoError(s.db.Create(&product).Error)
	return product
}

func (s *QueryHandlersTestSuite) seedMovement(productID uuid.UUID, date time.Time, quantity int, kind stock.Kind) {
	movement := stockrepo.MovementDTO{
		ID:        uuid.New(),
		ProductID: productID,
		Date:      date,
		Quantity:  quantity,
		Kind:      int(kind),
	}
	s.Require().NoError(s.db.Create(&movement).Error)
}

func (s *QueryHandlersTestSuite) seedPreparedItem(name string, productID uuid.UUID, cost decimal.Decimal) catalogrepo.PreparedItemDTO {
	preparationType := catalogrepo.PreparationTypeDTO{ID: uuid.New(), Description: "grilled"}
	s.Require().NoError(s.db.Create(&preparationType).Error)

	item := catalogrepo.PreparedItemDTO{
		ID:                uuid.New(),
		Name:              name,
		ProductID:         productID,
		PreparationTypeID: preparationType.ID,
		PreparationCost:   cost,
		PreparationTime:   25,
	}
	s.Require().NoError(s.db.Create(&item).Error)
	return item
}

func (s *QueryHandlersTestSuite) seedProductionOrder(
	date time.Time,
	status production.Status,
	lines map[uuid.UUID]int,
) productionrepo.OrderDTO {
	menu := catalogrepo.MenuDTO{ID: uuid.New(), Name: "lunch", Description: "weekday lunch"}
	s.Require().NoError(s.db.Create(&menu).Error)

	order := productionrepo.OrderDTO{
		ID:             uuid.New(),
		MenuID:         menu.ID,
		ProductionDate: date,
		Status:         int(status),
	}
	s.Require().NoError(s.db.Create(&order).Error)

	position := 0
	for preparedItemID, portions := range lines {
		item := productionrepo.ItemDTO{
			ID:             uuid.New(),
			OrderID:        order.ID,
			PreparedItemID: preparedItemID,
			Portions:       portions,
			Position:       position,
		}
		s.Require().NoError(s.db.Create(&item).Error)
		position++
	}
	return order
}

func (s *QueryHandlersTestSuite) TestGetProduct_DerivesOnHandFromLedger() {
	product := s.seedProduct("salmon", 5)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	s.seedMovement(product.ID, date, 50, stock.Purchase)
	s.seedMovement(product.ID, date, 10, stock.Consumption)
	s.seedMovement(product.ID, date, 3, stock.Discard)
	s.seedMovement(product.ID, date, 2, stock.Adjustment)

	query, err := queries.NewGetProductQuery(mustKernelUUID(s.T(), product.ID))
	s.Require().NoError(err)

	handler := queries.NewGetProductQueryHandler(s.db)
	response, err := handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal("salmon", response.Name)
	s.Equal(39, response.OnHand)
}

func (s *QueryHandlersTestSuite) TestGetProductsBelowMinimum_FiltersByDerivedOnHand() {
	low := s.seedProduct("flour", 20)
	healthy := s.seedProduct("rice", 5)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	s.seedMovement(low.ID, date, 10, stock.Purchase)
	s.seedMovement(healthy.ID, date, 50, stock.Purchase)

	handler := queries.NewGetProductsBelowMinimumQueryHandler(s.db)
	response, err := handler.Handle(context.Background(), queries.NewGetProductsBelowMinimumQuery())

	s.Require().NoError(err)
	s.Require().Len(response, 1)
	s.Equal("flour", response[0].Name)
	s.Equal(10, response[0].OnHand)
	s.Equal(20, response[0].MinimumStock)
}

func (s *QueryHandlersTestSuite) TestGetDiscardedMovements_WindowAndQuantityFloor() {
	product := s.seedProduct("lettuce", 5)
	inWindow := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	outOfWindow := inWindow.AddDate(0, 1, 0)
	s.seedMovement(product.ID, inWindow, 4, stock.Discard)
	s.seedMovement(product.ID, inWindow, 1, stock.Discard)
	s.seedMovement(product.ID, outOfWindow, 6, stock.Discard)
	s.seedMovement(product.ID, inWindow, 9, stock.Purchase)

	query, err := queries.NewGetDiscardedMovementsQuery(inWindow, inWindow.AddDate(0, 0, 7))
	s.Require().NoError(err)

	handler := queries.NewGetDiscardedMovementsQueryHandler(s.db)
	response, err := handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(response, 1)
	s.Equal(4, response[0].Quantity)
	s.Equal("DISCARD", response[0].Kind)
	s.Equal("lettuce", response[0].ProductName)
}

func (s *QueryHandlersTestSuite) TestGetProducedTotals_ProcessedOrdersOnly() {
	product := s.seedProduct("salmon", 5)
	grilled := s.seedPreparedItem("grilled salmon", product.ID, decimal.NewFromFloat(12.00))
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	s.seedProductionOrder(date, production.Processed, map[uuid.UUID]int{grilled.ID: 30})
	s.seedProductionOrder(date, production.Processed, map[uuid.UUID]int{grilled.ID: 20})
	s.seedProductionOrder(date, production.Registered, map[uuid.UUID]int{grilled.ID: 99})

	query, err := queries.NewGetProducedTotalsQuery(date, date.AddDate(0, 0, 1))
	s.Require().NoError(err)

	handler := queries.NewGetProducedTotalsQueryHandler(s.db)
	totals, err := handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Equal(map[string]int{"grilled salmon": 50}, totals)
}

func (s *QueryHandlersTestSuite) TestGetProductionReport_ValuesAndGrandTotal() {
	product := s.seedProduct("salmon", 5)
	grilled := s.seedPreparedItem("grilled salmon", product.ID, decimal.NewFromFloat(12.50))
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	s.seedProductionOrder(date, production.Processed, map[uuid.UUID]int{grilled.ID: 4})

	query, err := queries.NewGetProductionReportQuery(date, date)
	s.Require().NoError(err)

	handler := queries.NewGetProductionReportQueryHandler(s.db)
	report, err := handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(report.Orders, 1)
	s.Require().Len(report.Orders[0].Items, 1)
	s.True(report.Orders[0].Items[0].Value.Equal(decimal.NewFromFloat(50.00)))
	s.True(report.Orders[0].Total.Equal(decimal.NewFromFloat(50.00)))
	s.True(report.GrandTotal.Equal(decimal.NewFromFloat(50.00)))
}

func (s *QueryHandlersTestSuite) TestGetOrderLeadTimes_EmptyPopulationIsZero() {
	handler := queries.NewGetOrderLeadTimesQueryHandler(s.db)
	response, err := handler.Handle(context.Background(), queries.NewGetOrderLeadTimesQuery())

	s.Require().NoError(err)
	s.Equal(time.Duration(0), response.AverageToReady)
	s.Equal(time.Duration(0), response.AverageToCompletion)
}

func (s *QueryHandlersTestSuite) TestGetOrderLeadTimes_AveragesCapturedTimestamps() {
	neighborhood := registryrepo.NeighborhoodDTO{
		ID: uuid.New(), Name: "centro", DeliveryFee: decimal.NewFromFloat(5.00),
	}
	s.Require().NoError(s.db.Create(&neighborhood).Error)

	client := registryrepo.ClientDTO{
		ID: uuid.New(), Name: "Ana", IdentityCard: "123", TaxID: "456",
		Phone: "555-0001", Street: "Main", Number: "10",
		NeighborhoodID: neighborhood.ID, ReferencePoint: "corner",
	}
	s.Require().NoError(s.db.Create(&client).Error)

	registered := time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)
	ready1 := registered.Add(20 * time.Minute)
	ready2 := registered.Add(40 * time.Minute)
	completed1 := ready1.Add(30 * time.Minute)

	orders := []customerorderrepo.OrderDTO{
		{
			ID: uuid.New(), ClientID: client.ID,
			OrderDate: registered, OrderTime: registered,
			Status:       int(customerorder.Ready),
			RegisteredAt: registered, ReadyAt: &ready1, CompletedAt: nil,
		},
		{
			ID: uuid.New(), ClientID: client.ID,
			OrderDate: registered, OrderTime: registered,
			Status:       int(customerorder.Ready),
			RegisteredAt: registered, ReadyAt: &ready2, CompletedAt: nil,
		},
	}
	s.Require().NoError(s.db.Create(&orders).Error)

	completedOrder := customerorderrepo.OrderDTO{
		ID: uuid.New(), ClientID: client.ID,
		OrderDate: registered, OrderTime: registered,
		Status:       int(customerorder.Completed),
		RegisteredAt: registered, ReadyAt: &ready1, CompletedAt: &completed1,
	}
	deliveryPerson := registryrepo.DeliveryPersonDTO{
		ID: uuid.New(), Name: "Bruno", IdentityCard: "789",
		TaxID: "012", Phone: "555-0002",
	}
	s.Require().NoError(s.db.Create(&deliveryPerson).Error)
	completedOrder.DeliveryPersonID = &deliveryPerson.ID
	s.Require().NoError(s.db.Create(&completedOrder).Error)

	handler := queries.NewGetOrderLeadTimesQueryHandler(s.db)
	response, err := handler.Handle(context.Background(), queries.NewGetOrderLeadTimesQuery())

	s.Require().NoError(err)
	// (20 + 40 + 20) / 3 minutes to ready; 30 minutes ready to completed.
	s.Equal(80*time.Minute/3, response.AverageToReady)
	s.Equal(30*time.Minute, response.AverageToCompletion)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(QueryHandlersTestSuite))
}
