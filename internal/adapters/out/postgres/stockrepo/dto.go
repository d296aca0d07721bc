// Package stockrepo persists the stock movement ledger. Movements are
// append-and-remove only; on-hand quantities are always derived by
// summing the signed quantities, never stored.
package stockrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/stock"

	"github.com/google/uuid"
)

// MovementDTO represents the database structure for stock movements.
// The product index serves the per-product ledger reads; the date index
// serves the windowed discard and reporting queries.
type MovementDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Date      time.Time `gorm:"type:date;index;not null"`
	Quantity  int       `gorm:"not null"`
	Kind      int       `gorm:"not null"`
}

// TableName overrides GORM's default naming to "stock_movements".
func (MovementDTO) TableName() string {
	return "stock_movements"
}

func fromDomain(movement *stock.Movement) MovementDTO {
	return MovementDTO{
		ID:        movement.ID().Bytes(),
		ProductID: movement.Product().Bytes(),
		Date:      movement.Date(),
		Quantity:  movement.Quantity(),
		Kind:      int(movement.Kind()),
	}
}

func toDomain(dto MovementDTO) (*stock.Movement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return stock.RestoreMovement(id, productID, dto.Date, dto.Quantity, stock.Kind(dto.Kind))
}
