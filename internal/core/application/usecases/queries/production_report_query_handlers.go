package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProductionReportQueryHandler builds the windowed cost report.
// Monetary math runs on decimals in Go; the database only supplies the
// raw preparation costs and portion counts.
type GetProductionReportQueryHandler struct {
	db *gorm.DB
}

// NewGetProductionReportQueryHandler creates a handler for the cost
// report.
func NewGetProductionReportQueryHandler(db *gorm.DB) GetProductionReportQueryHandler {
	return GetProductionReportQueryHandler{db: db}
}

// Handle executes the query: every production order with a production
// date inside the inclusive window, each line valued at preparation
// cost times portions, with per-order totals and a grand total.
func (h GetProductionReportQueryHandler) Handle(
	ctx context.Context,
	query GetProductionReportQuery,
) (ProductionReportResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductionReportResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			po.id,
			po.production_date,
			pi.name,
			poi.portions,
			pi.preparation_cost
		FROM production_orders po
		JOIN production_order_items poi ON poi.order_id = po.id
		JOIN prepared_items pi ON pi.id = poi.prepared_item_id
		WHERE po.production_date BETWEEN ? AND ?
		ORDER BY po.production_date, po.id, poi.position`,
		query.DateStart(), query.DateEnd(),
	).Rows()
	if err != nil {
		return ProductionReportResponse{}, err
	}
	defer rows.Close()

	report := ProductionReportResponse{
		Orders:     make([]ProductionOrderReport, 0),
		GrandTotal: decimal.Zero,
	}
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var item ProductionReportItem
		var rawOrderID uuid.UUID
		var order ProductionOrderReport

		err = rows.Scan(
			&rawOrderID,
			&order.ProductionDate,
			&item.PreparedItemName,
			&item.Portions,
			&item.PreparationCost,
		)
		if err != nil {
			return ProductionReportResponse{}, err
		}

		item.Value = item.PreparationCost.Mul(decimal.NewFromInt(int64(item.Portions)))

		position, ok := index[rawOrderID]
		if !ok {
			orderID, idErr := kernel.UUIDFromBytes(rawOrderID[:])
			if idErr != nil {
				return ProductionReportResponse{}, idErr
			}
			order.OrderID = orderID
			order.Items = make([]ProductionReportItem, 0, 1)
			order.Total = decimal.Zero

			position = len(report.Orders)
			index[rawOrderID] = position
			report.Orders = append(report.Orders, order)
		}

		report.Orders[position].Items = append(report.Orders[position].Items, item)
		report.Orders[position].Total = report.Orders[position].Total.Add(item.Value)
		report.GrandTotal = report.GrandTotal.Add(item.Value)
	}

	return report, rows.Err()
}

// GetProducedTotalsQueryHandler aggregates portions produced per
// prepared item name over a date window.
type GetProducedTotalsQueryHandler struct {
	db *gorm.DB
}

// NewGetProducedTotalsQueryHandler creates a handler for produced
// totals.
func NewGetProducedTotalsQueryHandler(db *gorm.DB) GetProducedTotalsQueryHandler {
	return GetProducedTotalsQueryHandler{db: db}
}

// Handle executes the query. Only PROCESSED orders count: registered
// orders have not consumed stock and may still change.
func (h GetProducedTotalsQueryHandler) Handle(
	ctx context.Context,
	query GetProducedTotalsQuery,
) (map[string]int, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			pi.name,
			SUM(poi.portions)
		FROM production_orders po
		JOIN production_order_items poi ON poi.order_id = po.id
		JOIN prepared_items pi ON pi.id = poi.prepared_item_id
		WHERE po.status = ?
		  AND po.production_date BETWEEN ? AND ?
		GROUP BY pi.name`,
		int(production.Processed),
		query.DateStart(), query.DateEnd(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var name string
		var portions int

		if err = rows.Scan(&name, &portions); err != nil {
			return nil, err
		}
		totals[name] = portions
	}

	return totals, rows.Err()
}
