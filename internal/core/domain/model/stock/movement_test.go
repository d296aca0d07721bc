package stock_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/stock"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	t.Run("signs", func(t *testing.T) {
		assert.Equal(t, 1, stock.Purchase.Sign())
		assert.Equal(t, 1, stock.Adjustment.Sign())
		assert.Equal(t, -1, stock.Consumption.Sign())
		assert.Equal(t, -1, stock.Discard.Sign())
		assert.Equal(t, 0, stock.KindUnknown.Sign())
	})

	t.Run("string round trip", func(t *testing.T) {
		for _, kind := range []stock.Kind{stock.Purchase, stock.Consumption, stock.Discard, stock.Adjustment} {
			parsed, err := stock.KindFromString(kind.String())
			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
		}
	})

	t.Run("unknown string rejected", func(t *testing.T) {
		_, err := stock.KindFromString("TRANSFER")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		require.Error(t, stock.KindUnknown.Validate())
	})
}

func TestNewMovement(t *testing.T) {
	today := time.Now()

	t.Run("valid purchase", func(t *testing.T) {
		m, err := stock.NewMovement(kernel.NewUUID(), kernel.NewUUID(), today, 100, stock.Purchase)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, 100, m.Quantity())
		assert.Equal(t, 100, m.SignedQuantity())
	})

	t.Run("consumption debits", func(t *testing.T) {
		m, err := stock.NewMovement(kernel.NewUUID(), kernel.NewUUID(), today, 50, stock.Consumption)

		require.NoError(t, err)
		assert.Equal(t, -50, m.SignedQuantity())
	})

	t.Run("empty submission aggregates all violations", func(t *testing.T) {
		_, err := stock.NewMovement(kernel.NewUUID(), kernel.UUID{}, time.Time{}, 0, stock.KindUnknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t,
			"product is invalidquantity must be greater than zeromovement kind is invaliddate is invalid",
			err.Error())
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		_, err := stock.NewMovement(kernel.NewUUID(), kernel.NewUUID(), today, -10, stock.Purchase)
		require.Error(t, err)
	})

	t.Run("zero value struct fails Validate", func(t *testing.T) {
		var m stock.Movement
		require.ErrorIs(t, m.Validate(), stock.ErrMovementIsNotConstructed)
	})
}
