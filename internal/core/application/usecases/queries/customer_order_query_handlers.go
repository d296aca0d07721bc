package queries

import (
	"context"
	"database/sql"

	"restaurant/internal/core/domain/model/customerorder"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrderQueryHandler retrieves single customer orders from
// the database.
type GetCustomerOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrderQueryHandler creates a handler for single
// customer order reads.
func NewGetCustomerOrderQueryHandler(db *gorm.DB) GetCustomerOrderQueryHandler {
	return GetCustomerOrderQueryHandler{db: db}
}

// Handle executes the query. An unknown order id fails with
// ObjectNotFoundError.
func (h GetCustomerOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrderQuery,
) (CustomerOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerOrderResponse{}, err
	}

	orders, err := loadCustomerOrders(ctx, h.db, `WHERE co.id = ?`, query.OrderID().Bytes())
	if err != nil {
		return CustomerOrderResponse{}, err
	}

	if len(orders) == 0 {
		return CustomerOrderResponse{}, errs.NewObjectNotFoundError("customer_order_id", query.OrderID())
	}

	return orders[0], nil
}

// ListCustomerOrdersQueryHandler retrieves filtered customer order
// listings from the database.
type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomerOrdersQueryHandler creates a handler for customer
// order listings.
func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are returned newest registration
// first.
func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]CustomerOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := `WHERE 1 = 1`
	args := make([]any, 0, 4)

	if clientID := query.ClientID(); clientID != nil {
		where += ` AND co.client_id = ?`
		args = append(args, clientID.Bytes())
	}
	if status := query.Status(); status != nil {
		where += ` AND co.status = ?`
		args = append(args, int(*status))
	}
	if query.DateStart() != nil {
		where += ` AND co.order_date BETWEEN ? AND ?`
		args = append(args, *query.DateStart(), *query.DateEnd())
	}

	return loadCustomerOrders(ctx, h.db, where+` ORDER BY co.registered_at DESC, co.id`, args...)
}

// loadCustomerOrders runs the order header select with the given
// filter, then loads and stitches the item lines in a second round
// trip.
func loadCustomerOrders(
	ctx context.Context,
	db *gorm.DB,
	where string,
	args ...any,
) ([]CustomerOrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			co.id,
			co.client_id,
			c.name,
			co.delivery_person_id,
			dp.name,
			co.order_date,
			co.order_time,
			co.status,
			co.registered_at,
			co.ready_at,
			co.completed_at
		FROM customer_orders co
		JOIN clients c ON c.id = co.client_id
		LEFT JOIN delivery_people dp ON dp.id = co.delivery_person_id
		`+where, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]CustomerOrderResponse, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var order CustomerOrderResponse
		var id, clientID uuid.UUID
		var deliveryPersonID *uuid.UUID
		var deliveryPersonName sql.NullString
		var status int

		err = rows.Scan(
			&id,
			&clientID,
			&order.ClientName,
			&deliveryPersonID,
			&deliveryPersonName,
			&order.OrderDate,
			&order.OrderTime,
			&status,
			&order.RegisteredAt,
			&order.ReadyAt,
			&order.CompletedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		order.ID = orderID

		orderClientID, idErr := kernel.UUIDFromBytes(clientID[:])
		if idErr != nil {
			return nil, idErr
		}
		order.ClientID = orderClientID

		if deliveryPersonID != nil {
			dID, idErr := kernel.UUIDFromBytes((*deliveryPersonID)[:])
			if idErr != nil {
				return nil, idErr
			}
			order.DeliveryPersonID = &dID
			order.DeliveryPersonName = deliveryPersonName.String
		}

		order.Status = customerorder.Status(status).String()
		order.Items = make([]CustomerOrderItemResponse, 0)

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
			coi.id,
			coi.order_id,
			coi.prepared_item_id,
			pi.name,
			coi.portions
		FROM customer_order_items coi
		JOIN prepared_items pi ON pi.id = coi.prepared_item_id
		WHERE coi.order_id IN ?
		ORDER BY coi.position`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item CustomerOrderItemResponse
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
