// Package customerorderrepo persists customer order aggregates: the
// lifecycle fields, the transition timestamps and the item lines.
package customerorderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/customerorder"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for customer orders.
// RegisteredAt is denormalized from the order date and time so the
// lead time metrics can average over it in SQL.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID         uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryPersonID *uuid.UUID `gorm:"type:uuid;index"`
	OrderDate        time.Time  `gorm:"type:date;index;not null"`
	OrderTime        time.Time  `gorm:"not null"`
	Status           int        `gorm:"index;not null"`
	RegisteredAt     time.Time  `gorm:"not null"`
	ReadyAt          *time.Time
	CompletedAt      *time.Time
}

// TableName overrides GORM's default naming to "customer_orders".
func (OrderDTO) TableName() string {
	return "customer_orders"
}

// ItemDTO represents one customer order line.
type ItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	PreparedItemID uuid.UUID `gorm:"type:uuid;index"`
	Portions       int       `gorm:"not null"`
	Position       int       `gorm:"not null"`
}

// TableName overrides GORM's default naming to "customer_order_items".
func (ItemDTO) TableName() string {
	return "customer_order_items"
}

func fromDomain(order *customerorder.Order) (OrderDTO, []ItemDTO) {
	var deliveryPersonID *uuid.UUID
	if id := order.DeliveryPerson(); id != nil {
		raw := id.Bytes()
		deliveryPersonID = &raw
	}

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
		ID:               order.ID().Bytes(),
		ClientID:         order.Client().Bytes(),
		DeliveryPersonID: deliveryPersonID,
		OrderDate:        order.OrderDate(),
		OrderTime:        order.OrderTime(),
		Status:           int(order.Status()),
		RegisteredAt:     order.RegisteredAt(),
		ReadyAt:          order.ReadyAt(),
		CompletedAt:      order.CompletedAt(),
	}, items
}

func toDomain(dto OrderDTO, itemDTOs []ItemDTO) (*customerorder.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var deliveryPersonID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		dID, personErr := kernel.UUIDFromBytes((*dto.DeliveryPersonID)[:])
		if personErr != nil {
			return nil, personErr
		}
		deliveryPersonID = &dID
	}

	items := make([]customerorder.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		preparedItemID, itemErr := kernel.UUIDFromBytes(itemDTO.PreparedItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, customerorder.RestoreItem(itemID, preparedItemID, itemDTO.Portions))
	}

	return customerorder.RestoreOrder(
		id, clientID, deliveryPersonID,
		dto.OrderDate, dto.OrderTime, customerorder.Status(dto.Status),
		items, dto.ReadyAt, dto.CompletedAt)
}
