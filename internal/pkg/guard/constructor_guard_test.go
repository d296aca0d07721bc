package guard_test

import (
	"errors"
	"testing"

	"restaurant/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsage shows the intended embedding pattern on a
// domain value object.
func TestConstructorGuardUsage(t *testing.T) {
	type Portion struct {
		quantity int
		guard    guard.ConstructorGuard
	}

	errNotConstructed := errors.New("Portion must be created via NewPortion")

	newPortion := func(quantity int) (Portion, error) {
		if quantity <= 0 {
			return Portion{}, errors.New("quantity must be greater than zero")
		}
		return Portion{quantity: quantity, guard: guard.NewConstructorGuard()}, nil
	}

	valid, err := newPortion(3)
	require.NoError(t, err)
	require.NoError(t, valid.guard.Validate(errNotConstructed))

	var zero Portion
	err = zero.guard.Validate(errNotConstructed)
	require.Error(t, err)
	assert.Equal(t, errNotConstructed, err)
}
