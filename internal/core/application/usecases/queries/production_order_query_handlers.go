package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductionOrderQueryHandler retrieves single production orders
// from the database.
type GetProductionOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetProductionOrderQueryHandler creates a handler for single
// production order reads.
func NewGetProductionOrderQueryHandler(db *gorm.DB) GetProductionOrderQueryHandler {
	return GetProductionOrderQueryHandler{db: db}
}

// Handle executes the query. An unknown order id fails with
// ObjectNotFoundError.
func (h GetProductionOrderQueryHandler) Handle(
	ctx context.Context,
	query GetProductionOrderQuery,
) (ProductionOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductionOrderResponse{}, err
	}

	orders, err := loadProductionOrders(ctx, h.db, `WHERE po.id = ?`, query.OrderID().Bytes())
	if err != nil {
		return ProductionOrderResponse{}, err
	}

	if len(orders) == 0 {
		return ProductionOrderResponse{}, errs.NewObjectNotFoundError("production_order_id", query.OrderID())
	}

	return orders[0], nil
}

// ListProductionOrdersQueryHandler retrieves filtered production order
// listings from the database.
type ListProductionOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListProductionOrdersQueryHandler creates a handler for production
// order listings.
func NewListProductionOrdersQueryHandler(db *gorm.DB) ListProductionOrdersQueryHandler {
	return ListProductionOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest production
// date first.
func (h ListProductionOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListProductionOrdersQuery,
) ([]ProductionOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := `WHERE 1 = 1`
	args := make([]any, 0, 3)

	if status := query.Status(); status != nil {
		where += ` AND po.status = ?`
		args = append(args, int(*status))
	}
	if query.DateStart() != nil {
		where += ` AND po.production_date BETWEEN ? AND ?`
		args = append(args, *query.DateStart(), *query.DateEnd())
	}

	return loadProductionOrders(ctx, h.db, where+` ORDER BY po.production_date DESC, po.id`, args...)
}

// loadProductionOrders runs the order header select with the given
// filter, then loads and stitches the item lines in a second round
// trip.
func loadProductionOrders(
	ctx context.Context,
	db *gorm.DB,
	where string,
	args ...any,
) ([]ProductionOrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			po.id,
			po.menu_id,
			m.name,
			po.production_date,
			po.status
		FROM production_orders po
		JOIN menus m ON m.id = po.menu_id
		`+where, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ProductionOrderResponse, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var order ProductionOrderResponse
		var id, menuID uuid.UUID
		var status int

		err = rows.Scan(&id, &menuID, &order.MenuName, &order.ProductionDate, &status)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		order.ID = orderID

		orderMenuID, idErr := kernel.UUIDFromBytes(menuID[:])
		if idErr != nil {
			return nil, idErr
		}
		order.MenuID = orderMenuID

		order.Status = production.Status(status).String()
		order.Items = make([]ProductionOrderItemResponse, 0)

		index[id] = len(orders)
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	for id := range index {
		orderIDs = append(orderIDs, id)
	}

	itemRows, err := db.WithContext(ctx).Raw(`
		SELECT
			poi.id,
			poi.order_id,
			poi.prepared_item_id,
			pi.name,
			poi.portions
		FROM production_order_items poi
		JOIN prepared_items pi ON pi.id = poi.prepared_item_id
		WHERE poi.order_id IN ?
		ORDER BY poi.position`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item ProductionOrderItemResponse
		var id, orderID, preparedItemID uuid.UUID

		err = itemRows.Scan(&id, &orderID, &preparedItemID, &item.PreparedItemName, &item.Portions)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID

		itemPreparedItemID, idErr := kernel.UUIDFromBytes(preparedItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.PreparedItemID = itemPreparedItemID

		position, ok := index[orderID]
		if !ok {
			continue
		}
		orders[position].Items = append(orders[position].Items, item)
	}

	return orders, itemRows.Err()
}
