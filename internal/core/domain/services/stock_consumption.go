package services

import (
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"
	"restaurant/internal/core/domain/model/stock"
	"restaurant/internal/pkg/errs"
)

// StockConsumption is a domain service that translates a production
// order into the stock debits its processing causes.
//
// Each order item names a prepared item; the prepared item's recipe
// names the source product it consumes. Portions of the same product
// are summed across items, so processing emits at most one consumption
// movement per distinct product, dated with the production date.
//
// The service only plans the movements. Persisting them, and committing
// them atomically with the order's transition to Processed, is the
// command handler's job.
type StockConsumption struct{}

// NewStockConsumption creates a new StockConsumption service.
func NewStockConsumption() StockConsumption {
	return StockConsumption{}
}

// Plan computes the consumption movements for processing the given
// order. preparedItems must contain every prepared item the order's
// items reference; an unresolved reference fails with
// ObjectNotFoundError and no movements are produced.
func (s StockConsumption) Plan(
	order *production.Order,
	preparedItems []*catalog.PreparedItem,
) ([]*stock.Movement, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	recipes := make(map[kernel.UUID]*catalog.PreparedItem, len(preparedItems))
	for _, item := range preparedItems {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		recipes[item.ID()] = item
	}

	// Sum portions per source product, keeping first-seen product order
	// so the planned movements are deterministic.
	totals := make(map[kernel.UUID]int)
	var products []kernel.UUID
	for _, item := range order.Items() {
		recipe, ok := recipes[item.PreparedItemID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("prepared_item_id", item.PreparedItemID())
		}

		productID := recipe.Product()
		if _, seen := totals[productID]; !seen {
			products = append(products, productID)
		}
		totals[productID] += item.Portions()
	}

	movements := make([]*stock.Movement, 0, len(products))
	for _, productID := range products {
		movement, err := stock.NewMovement(
			kernel.NewUUID(), productID, order.ProductionDate(), totals[productID], stock.Consumption)
		if err != nil {
			return nil, err
		}
		movements = append(movements, movement)
	}

	return movements, nil
}
