package production_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/production"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T, portions int) []production.Item {
	t.Helper()
	item, err := production.NewItem(kernel.NewUUID(), kernel.NewUUID(), portions)
	require.NoError(t, err)
	return []production.Item{item}
}

func TestNewItem(t *testing.T) {
	t.Run("exposes its fields", func(t *testing.T) {
		id := kernel.NewUUID()
		preparedItemID := kernel.NewUUID()

		item, err := production.NewItem(id, preparedItemID, 3)

		require.NoError(t, err)
		assert.Equal(t, id, item.ID())
		assert.Equal(t, preparedItemID, item.PreparedItemID())
		assert.Equal(t, 3, item.Portions())
	})

	t.Run("invalid id rejected", func(t *testing.T) {
		_, err := production.NewItem(kernel.UUID{}, kernel.NewUUID(), 3)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewOrder(t *testing.T) {
	today := time.Now()

	t.Run("valid", func(t *testing.T) {
		o, err := production.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), today, production.Registered, validItems(t, 50))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, production.Registered, o.Status())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("empty submission aggregates every violation", func(t *testing.T) {
		_, err := production.NewOrder(
			kernel.NewUUID(), kernel.UUID{}, time.Time{}, production.StatusUnknown, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t,
			"production order must have at least one item"+
				"production date is invalid"+
				"menu is invalid"+
				"order state is invalid",
			err.Error())
	})

	t.Run("non-positive portions rejected", func(t *testing.T) {
		_, err := production.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), today, production.Registered, validItems(t, 0))

		require.Error(t, err)
		assert.Equal(t, "portion quantity must be greater than zero", err.Error())
	})
}

func TestOrder_Process(t *testing.T) {
	today := time.Now()

	t.Run("registered order processes once", func(t *testing.T) {
		o, err := production.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), today, production.Registered, validItems(t, 7))
		require.NoError(t, err)

		require.NoError(t, o.Process())
		assert.Equal(t, production.Processed, o.Status())
	})

	t.Run("second process fails with invalid state", func(t *testing.T) {
		o, err := production.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), today, production.Registered, validItems(t, 7))
		require.NoError(t, err)
		require.NoError(t, o.Process())

		err = o.Process()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, "order already processed", err.Error())
	})
}

func TestOrder_UpdateComposition(t *testing.T) {
	today := time.Now()

	t.Run("registered order accepts edits", func(t *testing.T) {
		o, err := production.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), today, production.Registered, validItems(t, 7))
		require.NoError(t, err)

		newMenu := kernel.NewUUID()
		require.NoError(t, o.UpdateComposition(newMenu, today.AddDate(0, 0, 1), validItems(t, 3)))
		assert.True(t, newMenu.IsEqual(o.Menu()))
		assert.Equal(t, 3, o.Items()[0].Portions())
	})

	t.Run("processed order rejects edits", func(t *testing.T) {
		o, err := production.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), today, production.Registered, validItems(t, 7))
		require.NoError(t, err)
		require.NoError(t, o.Process())

		err = o.UpdateComposition(kernel.NewUUID(), today, validItems(t, 3))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, "production order already processed, cannot be altered", err.Error())
	})

	t.Run("edits are revalidated", func(t *testing.T) {
		o, err := production.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), today, production.Registered, validItems(t, 7))
		require.NoError(t, err)

		err = o.UpdateComposition(o.Menu(), today, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestStatusFromString(t *testing.T) {
	s, err := production.StatusFromString("REGISTERED")
	require.NoError(t, err)
	assert.Equal(t, production.Registered, s)

	_, err = production.StatusFromString("COOKING")
	require.Error(t, err)
}
