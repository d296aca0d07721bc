package services_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"
	"restaurant/internal/core/domain/model/stock"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preparedItem(t *testing.T, productID kernel.UUID) *catalog.PreparedItem {
	t.Helper()
	item, err := catalog.NewPreparedItem(
		kernel.NewUUID(), "roast", productID, kernel.NewUUID(),
		decimal.NewFromFloat(3.50), 25)
	require.NoError(t, err)
	return item
}

func productionOrder(t *testing.T, date time.Time, items []production.Item) *production.Order {
	t.Helper()
	o, err := production.NewOrder(kernel.NewUUID(), kernel.NewUUID(), date, production.Registered, items)
	require.NoError(t, err)
	return o
}

func TestStockConsumption_Plan(t *testing.T) {
	planner := services.NewStockConsumption()
	date := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)

	t.Run("one movement per distinct product", func(t *testing.T) {
		productA := kernel.NewUUID()
		productB := kernel.NewUUID()
		roastA := preparedItem(t, productA)
		grillA := preparedItem(t, productA)
		stewB := preparedItem(t, productB)

		itemA1, err := production.NewItem(kernel.NewUUID(), roastA.ID(), 10)
		require.NoError(t, err)
		itemA2, err := production.NewItem(kernel.NewUUID(), grillA.ID(), 15)
		require.NoError(t, err)
		itemB, err := production.NewItem(kernel.NewUUID(), stewB.ID(), 7)
		require.NoError(t, err)

		order := productionOrder(t, date, []production.Item{itemA1, itemA2, itemB})

		movements, err := planner.Plan(order, []*catalog.PreparedItem{roastA, grillA, stewB})

		require.NoError(t, err)
		require.Len(t, movements, 2)

		assert.True(t, productA.IsEqual(movements[0].Product()))
		assert.Equal(t, 25, movements[0].Quantity())
		assert.Equal(t, stock.Consumption, movements[0].Kind())
		assert.Equal(t, -25, movements[0].SignedQuantity())
		assert.Equal(t, date, movements[0].Date())

		assert.True(t, productB.IsEqual(movements[1].Product()))
		assert.Equal(t, 7, movements[1].Quantity())
	})

	t.Run("unresolved prepared item fails the whole plan", func(t *testing.T) {
		roast := preparedItem(t, kernel.NewUUID())
		item, err := production.NewItem(kernel.NewUUID(), kernel.NewUUID(), 4)
		require.NoError(t, err)

		order := productionOrder(t, date, []production.Item{item})

		movements, err := planner.Plan(order, []*catalog.PreparedItem{roast})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Nil(t, movements)
	})

	t.Run("unconstructed order is rejected", func(t *testing.T) {
		_, err := planner.Plan(&production.Order{}, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, production.ErrOrderIsNotConstructed)
	})
}
