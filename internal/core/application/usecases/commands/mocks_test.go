package commands_test

import (
	"context"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/customerorder"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"
	"restaurant/internal/core/domain/model/registry"
	"restaurant/internal/core/domain/model/stock"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFoodGroupRepository struct{ mock.Mock }

func (m *MockFoodGroupRepository) Add(ctx context.Context, g *catalog.FoodGroup) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockFoodGroupRepository) Update(ctx context.Context, g *catalog.FoodGroup) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockFoodGroupRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.FoodGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.FoodGroup), args.Error(1)
}

func (m *MockFoodGroupRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPreparedItemRepository struct{ mock.Mock }

func (m *MockPreparedItemRepository) Add(ctx context.Context, i *catalog.PreparedItem) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockPreparedItemRepository) Update(ctx context.Context, i *catalog.PreparedItem) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockPreparedItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.PreparedItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.PreparedItem), args.Error(1)
}

func (m *MockPreparedItemRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.PreparedItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.PreparedItem), args.Error(1)
}

func (m *MockPreparedItemRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, menu *catalog.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, menu *catalog.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Menu), args.Error(1)
}

func (m *MockMenuRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *registry.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *registry.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*registry.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.Client), args.Error(1)
}

func (m *MockClientRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDeliveryPersonRepository struct{ mock.Mock }

func (m *MockDeliveryPersonRepository) Add(ctx context.Context, p *registry.DeliveryPerson) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockDeliveryPersonRepository) Update(ctx context.Context, p *registry.DeliveryPerson) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockDeliveryPersonRepository) Get(ctx context.Context, id kernel.UUID) (*registry.DeliveryPerson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.DeliveryPerson), args.Error(1)
}

func (m *MockDeliveryPersonRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStockMovementRepository struct{ mock.Mock }

func (m *MockStockMovementRepository) Add(ctx context.Context, movement *stock.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockMovementRepository) AddAll(ctx context.Context, movements []*stock.Movement) error {
	args := m.Called(ctx, movements)
	return args.Error(0)
}

func (m *MockStockMovementRepository) Get(ctx context.Context, id kernel.UUID) (*stock.Movement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Movement), args.Error(1)
}

func (m *MockStockMovementRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductionOrderRepository struct{ mock.Mock }

func (m *MockProductionOrderRepository) Add(ctx context.Context, o *production.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockProductionOrderRepository) Update(ctx context.Context, o *production.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockProductionOrderRepository) Get(ctx context.Context, id kernel.UUID) (*production.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.Order), args.Error(1)
}

func (m *MockProductionOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerOrderRepository struct{ mock.Mock }

func (m *MockCustomerOrderRepository) Add(ctx context.Context, o *customerorder.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockCustomerOrderRepository) Update(ctx context.Context, o *customerorder.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockCustomerOrderRepository) Get(ctx context.Context, id kernel.UUID) (*customerorder.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerorder.Order), args.Error(1)
}

func (m *MockCustomerOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// txMock implements the Begin/Commit/Rollback triple shared by every
// unit of work mock.
type txMock struct{ mock.Mock }

func (m *txMock) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockStockUoW struct{ txMock }

func (m *MockStockUoW) StockMovementRepository() ports.StockMovementRepository {
	args := m.Called()
	return args.Get(0).(ports.StockMovementRepository)
}

func (m *MockStockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

type MockProductionUoW struct{ txMock }

func (m *MockProductionUoW) ProductionOrderRepository() ports.ProductionOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductionOrderRepository)
}

func (m *MockProductionUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *MockProductionUoW) PreparedItemRepository() ports.PreparedItemRepository {
	args := m.Called()
	return args.Get(0).(ports.PreparedItemRepository)
}

func (m *MockProductionUoW) StockMovementRepository() ports.StockMovementRepository {
	args := m.Called()
	return args.Get(0).(ports.StockMovementRepository)
}

type MockProductionUoWFactory struct{ mock.Mock }

func (m *MockProductionUoWFactory) Create() commands.ProductionUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductionUoW)
}

type MockCustomerOrderUoW struct{ txMock }

func (m *MockCustomerOrderUoW) CustomerOrderRepository() ports.CustomerOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerOrderRepository)
}

func (m *MockCustomerOrderUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockCustomerOrderUoW) DeliveryPersonRepository() ports.DeliveryPersonRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryPersonRepository)
}

func (m *MockCustomerOrderUoW) PreparedItemRepository() ports.PreparedItemRepository {
	args := m.Called()
	return args.Get(0).(ports.PreparedItemRepository)
}

type MockCustomerOrderUoWFactory struct{ mock.Mock }

func (m *MockCustomerOrderUoWFactory) Create() commands.CustomerOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerOrderUoW)
}

type MockCatalogUoW struct{ txMock }

func (m *MockCatalogUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockCatalogUoW) FoodGroupRepository() ports.FoodGroupRepository {
	args := m.Called()
	return args.Get(0).(ports.FoodGroupRepository)
}

func (m *MockCatalogUoW) PreparationTypeRepository() ports.PreparationTypeRepository {
	args := m.Called()
	return args.Get(0).(ports.PreparationTypeRepository)
}

func (m *MockCatalogUoW) PreparedItemRepository() ports.PreparedItemRepository {
	args := m.Called()
	return args.Get(0).(ports.PreparedItemRepository)
}

func (m *MockCatalogUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}
