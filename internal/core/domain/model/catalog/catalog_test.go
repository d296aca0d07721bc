package catalog_test

import (
	"testing"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := catalog.NewProduct(
			kernel.NewUUID(), "White Rice", decimal.NewFromFloat(2.5), 100, 50, kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "White Rice", p.Name())
		assert.Equal(t, 100, p.MinimumStock())
	})

	t.Run("aggregates all violations into one message", func(t *testing.T) {
		_, err := catalog.NewProduct(
			kernel.NewUUID(), "", decimal.Zero, 0, 0, kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, "name is invalidunit cost must be greater than zerofood group is invalid", err.Error())
	})

	t.Run("zero value struct fails Validate", func(t *testing.T) {
		var p catalog.Product
		require.ErrorIs(t, p.Validate(), catalog.ErrProductIsNotConstructed)
	})
}

func TestNewPreparedItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		item, err := catalog.NewPreparedItem(
			kernel.NewUUID(), "Cooked Rice", kernel.NewUUID(), kernel.NewUUID(),
			decimal.NewFromFloat(0.5), 20)

		require.NoError(t, err)
		assert.Equal(t, "Cooked Rice", item.Name())
		assert.Equal(t, 20, item.PreparationTime())
	})

	t.Run("aggregates all violations", func(t *testing.T) {
		_, err := catalog.NewPreparedItem(
			kernel.NewUUID(), "", kernel.UUID{}, kernel.UUID{}, decimal.Zero, 0)

		require.Error(t, err)
		assert.Equal(t,
			"related product is requiredrelated preparation type is required"+
				"preparation time is invalidpreparation cost is invalid",
			err.Error())
	})
}

func TestNewMenu(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		items := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
		m, err := catalog.NewMenu(kernel.NewUUID(), "Red meats with cooked rice",
			"Two red meat options with a side of cooked rice", items)

		require.NoError(t, err)
		assert.Len(t, m.Items(), 2)
	})

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := catalog.NewMenu(kernel.NewUUID(), "", "", nil)

		require.Error(t, err)
		assert.Equal(t, "name is invaliddescription is invalidmenu must have at least one item", err.Error())
	})

	t.Run("items are copied", func(t *testing.T) {
		items := []kernel.UUID{kernel.NewUUID()}
		m, err := catalog.NewMenu(kernel.NewUUID(), "Menu", "Description", items)
		require.NoError(t, err)

		got := m.Items()
		got[0] = kernel.NewUUID()
		assert.True(t, items[0].IsEqual(m.Items()[0]))
	})
}

func TestNewFoodGroup(t *testing.T) {
	_, err := catalog.NewFoodGroup(kernel.NewUUID(), "")
	require.Error(t, err)
	assert.Equal(t, "name is invalid", err.Error())

	g, err := catalog.NewFoodGroup(kernel.NewUUID(), "Proteins")
	require.NoError(t, err)
	assert.Equal(t, "Proteins", g.Name())
}

func TestNewPreparationType(t *testing.T) {
	_, err := catalog.NewPreparationType(kernel.NewUUID(), "")
	require.Error(t, err)
	assert.Equal(t, "description is invalid", err.Error())

	pt, err := catalog.NewPreparationType(kernel.NewUUID(), "Boiled in water")
	require.NoError(t, err)
	assert.Equal(t, "Boiled in water", pt.Description())
}
