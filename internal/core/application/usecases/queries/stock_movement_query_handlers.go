package queries

import (
	"context"
	"database/sql"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/stock"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const stockMovementSelect = `
	SELECT
		sm.id,
		sm.product_id,
		p.name,
		sm.date,
		sm.quantity,
		sm.kind
	FROM stock_movements sm
	JOIN products p ON p.id = sm.product_id
`

func scanStockMovements(rows *sql.Rows) ([]StockMovementResponse, error) {
	movements := make([]StockMovementResponse, 0)

	for rows.Next() {
		var movement StockMovementResponse
		var id, productID uuid.UUID
		var kind int

		err := rows.Scan(
			&id,
			&productID,
			&movement.ProductName,
			&movement.Date,
			&movement.Quantity,
			&kind,
		)
		if err != nil {
			return nil, err
		}

		movementID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		movement.ID = movementID

		movementProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		movement.ProductID = movementProductID

		movement.Kind = stock.Kind(kind).String()
		movements = append(movements, movement)
	}

	return movements, rows.Err()
}

// GetStockMovementQueryHandler retrieves single ledger movements from
// the database.
type GetStockMovementQueryHandler struct {
	db *gorm.DB
}

// NewGetStockMovementQueryHandler creates a handler for single
// movement reads.
func NewGetStockMovementQueryHandler(db *gorm.DB) GetStockMovementQueryHandler {
	return GetStockMovementQueryHandler{db: db}
}

// Handle executes the query. An unknown movement id fails with
// ObjectNotFoundError.
func (h GetStockMovementQueryHandler) Handle(
	ctx context.Context,
	query GetStockMovementQuery,
) (StockMovementResponse, error) {
	if err := query.Validate(); err != nil {
		return StockMovementResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		stockMovementSelect+`WHERE sm.id = ?`,
		query.MovementID().Bytes(),
	).Rows()
	if err != nil {
		return StockMovementResponse{}, err
	}
	defer rows.Close()

	movements, err := scanStockMovements(rows)
	if err != nil {
		return StockMovementResponse{}, err
	}

	if len(movements) == 0 {
		return StockMovementResponse{}, errs.NewObjectNotFoundError("stock_movement_id", query.MovementID())
	}

	return movements[0], nil
}

// GetMovementsByProductQueryHandler retrieves a product's full ledger
// from the database.
type GetMovementsByProductQueryHandler struct {
	db *gorm.DB
}

// NewGetMovementsByProductQueryHandler creates a handler for
// per-product ledger reads.
func NewGetMovementsByProductQueryHandler(db *gorm.DB) GetMovementsByProductQueryHandler {
	return GetMovementsByProductQueryHandler{db: db}
}

// Handle executes the query. Movements are returned in ledger order,
// oldest first.
func (h GetMovementsByProductQueryHandler) Handle(
	ctx context.Context,
	query GetMovementsByProductQuery,
) ([]StockMovementResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		stockMovementSelect+`WHERE sm.product_id = ? ORDER BY sm.date, sm.id`,
		query.ProductID().Bytes(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStockMovements(rows)
}

// GetMovementsByKindQueryHandler retrieves all movements of one kind
// from the database.
type GetMovementsByKindQueryHandler struct {
	db *gorm.DB
}

// NewGetMovementsByKindQueryHandler creates a handler for per-kind
// ledger reads.
func NewGetMovementsByKindQueryHandler(db *gorm.DB) GetMovementsByKindQueryHandler {
	return GetMovementsByKindQueryHandler{db: db}
}

// Handle executes the query. Movements are returned in ledger order,
// oldest first.
func (h GetMovementsByKindQueryHandler) Handle(
	ctx context.Context,
	query GetMovementsByKindQuery,
) ([]StockMovementResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		stockMovementSelect+`WHERE sm.kind = ? ORDER BY sm.date, sm.id`,
		int(query.Kind()),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStockMovements(rows)
}

// GetDiscardedMovementsQueryHandler retrieves windowed discard
// movements from the database.
type GetDiscardedMovementsQueryHandler struct {
	db *gorm.DB
}

// NewGetDiscardedMovementsQueryHandler creates a handler for discard
// window reads.
func NewGetDiscardedMovementsQueryHandler(db *gorm.DB) GetDiscardedMovementsQueryHandler {
	return GetDiscardedMovementsQueryHandler{db: db}
}

// Handle executes the query: DISCARD movements with date inside the
// inclusive window, quantity two or more.
func (h GetDiscardedMovementsQueryHandler) Handle(
	ctx context.Context,
	query GetDiscardedMovementsQuery,
) ([]StockMovementResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		stockMovementSelect+`
		WHERE sm.kind = ?
		  AND sm.date BETWEEN ? AND ?
		  AND sm.quantity >= 2
		ORDER BY sm.date, sm.id`,
		int(stock.Discard),
		query.DateStart(),
		query.DateEnd(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStockMovements(rows)
}
