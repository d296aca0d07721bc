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

// productSelect derives on-hand by summing the signed ledger: purchases
// and adjustments credit, consumptions and discards debit.
const productSelect = `
	SELECT
		p.id,
		p.name,
		p.unit_cost,
		p.minimum_stock,
		p.energetic_value,
		p.food_group_id,
		COALESCE(SUM(
			CASE WHEN sm.kind IN (?, ?) THEN sm.quantity ELSE -sm.quantity END
		), 0) AS on_hand
	FROM products p
	LEFT JOIN stock_movements sm ON sm.product_id = p.id
	GROUP BY p.id, p.name, p.unit_cost, p.minimum_stock, p.energetic_value, p.food_group_id
`

func scanProducts(rows *sql.Rows) ([]ProductResponse, error) {
	products := make([]ProductResponse, 0)

	for rows.Next() {
		var product ProductResponse
		var id, foodGroupID uuid.UUID

		err := rows.Scan(
			&id,
			&product.Name,
			&product.UnitCost,
			&product.MinimumStock,
			&product.EnergeticValue,
			&foodGroupID,
			&product.OnHand,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		product.ID = productID

		productFoodGroupID, idErr := kernel.UUIDFromBytes(foodGroupID[:])
		if idErr != nil {
			return nil, idErr
		}
		product.FoodGroupID = productFoodGroupID

		products = append(products, product)
	}

	return products, rows.Err()
}

// GetProductQueryHandler retrieves one product with its ledger-derived
// on-hand quantity.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single product reads.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query. An unknown product id fails with
// ObjectNotFoundError.
func (h GetProductQueryHandler) Handle(
	ctx context.Context,
	query GetProductQuery,
) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT * FROM (`+productSelect+`) products WHERE products.id = ?`,
		int(stock.Purchase), int(stock.Adjustment),
		query.ProductID().Bytes(),
	).Rows()
	if err != nil {
		return ProductResponse{}, err
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return ProductResponse{}, err
	}

	if len(products) == 0 {
		return ProductResponse{}, errs.NewObjectNotFoundError("product_id", query.ProductID())
	}

	return products[0], nil
}

// GetAllProductsQueryHandler retrieves the full product list with
// ledger-derived on-hand quantities.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProductsQueryHandler creates a handler for product list
// reads.
func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

// Handle executes the query. Products are returned sorted by name.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		productSelect+`ORDER BY p.name`,
		int(stock.Purchase), int(stock.Adjustment),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetProductsBelowMinimumQueryHandler retrieves products whose on-hand
// quantity has fallen below the minimum stock threshold.
type GetProductsBelowMinimumQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsBelowMinimumQueryHandler creates a handler for restock
// alert reads.
func NewGetProductsBelowMinimumQueryHandler(db *gorm.DB) GetProductsBelowMinimumQueryHandler {
	return GetProductsBelowMinimumQueryHandler{db: db}
}

// Handle executes the query. Products are returned sorted by name.
func (h GetProductsBelowMinimumQueryHandler) Handle(
	ctx context.Context,
	query GetProductsBelowMinimumQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT * FROM (`+productSelect+`) products
		WHERE products.on_hand < products.minimum_stock
		ORDER BY products.name`,
		int(stock.Purchase), int(stock.Adjustment),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}
