package registry_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/registry"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := registry.NewClient(
			kernel.NewUUID(), "Client 01", "456789-1", "234.432.567-12",
			"65 99999-7070", "Main Street", "100", kernel.NewUUID(), "next to the bakery")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Client 01", c.Name())
	})

	t.Run("empty submission aggregates every field violation", func(t *testing.T) {
		_, err := registry.NewClient(
			kernel.NewUUID(), "", "", "", "", "", "", kernel.UUID{}, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t,
			"name is invalididentity card is invalidtax id is invalidphone is invalid"+
				"street is invalidnumber is invalidneighborhood is invalidreference point is invalid",
			err.Error())
	})
}

func TestNewDeliveryPerson(t *testing.T) {
	_, err := registry.NewDeliveryPerson(kernel.NewUUID(), "", "", "", "")
	require.Error(t, err)
	assert.Equal(t, "name is invalididentity card is invalidtax id is invalidphone is invalid", err.Error())

	d, err := registry.NewDeliveryPerson(
		kernel.NewUUID(), "Delivery 01", "1111111", "111.222.333-44", "(65) 95623-8978")
	require.NoError(t, err)
	assert.Equal(t, "Delivery 01", d.Name())
}

func TestNewCollaborator(t *testing.T) {
	c, err := registry.NewCollaborator(
		kernel.NewUUID(), "Collaborator 01", "2222222", "555.666.777-88", "65 98888-0000")
	require.NoError(t, err)
	require.NoError(t, c.Validate())
}

func TestNewNeighborhood(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		n, err := registry.NewNeighborhood(kernel.NewUUID(), "Downtown", decimal.NewFromFloat(5.0))
		require.NoError(t, err)
		assert.True(t, n.DeliveryFee().Equal(decimal.NewFromFloat(5.0)))
	})

	t.Run("aggregated violations", func(t *testing.T) {
		_, err := registry.NewNeighborhood(kernel.NewUUID(), "", decimal.Zero)
		require.Error(t, err)
		assert.Equal(t, "name is invaliddelivery fee must be greater than zero", err.Error())
	})
}
