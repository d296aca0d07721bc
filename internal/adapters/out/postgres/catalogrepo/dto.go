// Package catalogrepo persists the catalog aggregates: products, food
// groups, preparation types, prepared items and menus. DTOs map the
// aggregates onto relational tables; menus own a child table for their
// prepared item references.
package catalogrepo

import (
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for products. The
// on-hand quantity is never stored here: read models derive it from
// the stock_movements table.
type ProductDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(255);not null"`
	UnitCost       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	MinimumStock   int             `gorm:"not null"`
	EnergeticValue int             `gorm:"not null"`
	FoodGroupID    uuid.UUID       `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming to "products".
func (ProductDTO) TableName() string {
	return "products"
}

func productFromDomain(product *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:             product.ID().Bytes(),
		Name:           product.Name(),
		UnitCost:       product.UnitCost(),
		MinimumStock:   product.MinimumStock(),
		EnergeticValue: product.EnergeticValue(),
		FoodGroupID:    product.FoodGroup().Bytes(),
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	foodGroupID, err := kernel.UUIDFromBytes(dto.FoodGroupID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreProduct(
		id, dto.Name, dto.UnitCost, dto.MinimumStock, dto.EnergeticValue, foodGroupID)
}

// FoodGroupDTO represents the database structure for food groups.
type FoodGroupDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming to "food_groups".
func (FoodGroupDTO) TableName() string {
	return "food_groups"
}

func foodGroupFromDomain(group *catalog.FoodGroup) FoodGroupDTO {
	return FoodGroupDTO{
		ID:   group.ID().Bytes(),
		Name: group.Name(),
	}
}

func foodGroupToDomain(dto FoodGroupDTO) (*catalog.FoodGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreFoodGroup(id, dto.Name)
}

// PreparationTypeDTO represents the database structure for preparation
// types.
type PreparationTypeDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Description string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming to "preparation_types".
func (PreparationTypeDTO) TableName() string {
	return "preparation_types"
}

func preparationTypeFromDomain(preparationType *catalog.PreparationType) PreparationTypeDTO {
	return PreparationTypeDTO{
		ID:          preparationType.ID().Bytes(),
		Description: preparationType.Description(),
	}
}

func preparationTypeToDomain(dto PreparationTypeDTO) (*catalog.PreparationType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestorePreparationType(id, dto.Description)
}

// PreparedItemDTO represents the database structure for prepared items.
// Each row links a recipe to the single raw product it consumes.
type PreparedItemDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name              string          `gorm:"type:varchar(255);not null"`
	ProductID         uuid.UUID       `gorm:"type:uuid;index"`
	PreparationTypeID uuid.UUID       `gorm:"type:uuid;index"`
	PreparationCost   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PreparationTime   int             `gorm:"not null"`
}

// TableName overrides GORM's default naming to "prepared_items".
func (PreparedItemDTO) TableName() string {
	return "prepared_items"
}

func preparedItemFromDomain(item *catalog.PreparedItem) PreparedItemDTO {
	return PreparedItemDTO{
		ID:                item.ID().Bytes(),
		Name:              item.Name(),
		ProductID:         item.Product().Bytes(),
		PreparationTypeID: item.PreparationType().Bytes(),
		PreparationCost:   item.PreparationCost(),
		PreparationTime:   item.PreparationTime(),
	}
}

func preparedItemToDomain(dto PreparedItemDTO) (*catalog.PreparedItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	preparationTypeID, err := kernel.UUIDFromBytes(dto.PreparationTypeID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestorePreparedItem(
		id, dto.Name, productID, preparationTypeID, dto.PreparationCost, dto.PreparationTime)
}

// MenuDTO represents the database structure for menus. Item references
// live in the menu_items child table.
type MenuDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:varchar(512);not null"`
}

// TableName overrides GORM's default naming to "menus".
func (MenuDTO) TableName() string {
	return "menus"
}

// MenuItemDTO links a menu to one of its prepared items. Position keeps
// the aggregate's item ordering stable across round trips.
type MenuItemDTO struct {
	MenuID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PreparedItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position       int       `gorm:"not null"`
}

// TableName overrides GORM's default naming to "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func menuFromDomain(menu *catalog.Menu) (MenuDTO, []MenuItemDTO) {
	itemIDs := menu.Items()
	items := make([]MenuItemDTO, 0, len(itemIDs))
	for position, itemID := range itemIDs {
		items = append(items, MenuItemDTO{
			MenuID:         menu.ID().Bytes(),
			PreparedItemID: itemID.Bytes(),
			Position:       position,
		})
	}

	return MenuDTO{
		ID:          menu.ID().Bytes(),
		Name:        menu.Name(),
		Description: menu.Description(),
	}, items
}

func menuToDomain(dto MenuDTO, items []MenuItemDTO) (*catalog.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemIDs := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		itemID, itemErr := kernel.UUIDFromBytes(item.PreparedItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		itemIDs = append(itemIDs, itemID)
	}

	return catalog.RestoreMenu(id, dto.Name, dto.Description, itemIDs)
}
