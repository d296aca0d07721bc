// Package productionrepo persists production order aggregates. The
// order row carries the state machine fields; item lines live in a
// child table and are replaced wholesale on update.
package productionrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for production orders.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuID         uuid.UUID `gorm:"type:uuid;index"`
	ProductionDate time.Time `gorm:"type:date;index;not null"`
	Status         int       `gorm:"index;not null"`
}

// TableName overrides GORM's default naming to "production_orders".
func (OrderDTO) TableName() string {
	return "production_orders"
}

// ItemDTO represents one production order line.
type ItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	PreparedItemID uuid.UUID `gorm:"type:uuid;index"`
	Portions       int       `gorm:"not null"`
	Position       int       `gorm:"not null"`
}

// TableName overrides GORM's default naming to "production_order_items".
func (ItemDTO) TableName() string {
	return "production_order_items"
}

func fromDomain(order *production.Order) (OrderDTO, []ItemDTO) {
	domainItems := order.Items()
	items := make([]ItemDTO, 0, len(domainItems))
	for position, item := range domainItems {
		items = append(items, ItemDTO{
			ID:             item.ID().Bytes(),
			OrderID:        order.ID().Bytes(),
			PreparedItemID: item.PreparedItemID().Bytes(),
			Portions:       item.Portions(),
			Position:       position,
		})
	}

	return OrderDTO{
		ID:             order.ID().Bytes(),
		MenuID:         order.Menu().Bytes(),
		ProductionDate: order.ProductionDate(),
		Status:         int(order.Status()),
	}, items
}

func toDomain(dto OrderDTO, itemDTOs []ItemDTO) (*production.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return nil, err
	}

	items := make([]production.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		preparedItemID, itemErr := kernel.UUIDFromBytes(itemDTO.PreparedItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := production.NewItem(itemID, preparedItemID, itemDTO.Portions)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return production.RestoreOrder(id, menuID, dto.ProductionDate, production.Status(dto.Status), items)
}
