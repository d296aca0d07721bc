package customerorder_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/customerorder"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T, portions int) []customerorder.Item {
	t.Helper()
	item, err := customerorder.NewItem(kernel.NewUUID(), kernel.NewUUID(), portions)
	require.NoError(t, err)
	return []customerorder.Item{item}
}

func registeredOrder(t *testing.T) *customerorder.Order {
	t.Helper()
	o, err := customerorder.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		time.Now(), time.Now(),
		customerorder.Registered, validItems(t, 2))
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	now := time.Now()

	t.Run("valid", func(t *testing.T) {
		o, err := customerorder.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), now, now,
			customerorder.Registered, validItems(t, 3))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, customerorder.Registered, o.Status())
		assert.Nil(t, o.DeliveryPerson())
		assert.Nil(t, o.ReadyAt())
		assert.Nil(t, o.CompletedAt())
	})

	t.Run("registration instant combines date and time", func(t *testing.T) {
		date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		clock := time.Date(0, 1, 1, 19, 30, 0, 0, time.UTC)

		o, err := customerorder.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), date, clock,
			customerorder.Registered, validItems(t, 1))
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC), o.RegisteredAt())
	})

	t.Run("empty submission aggregates every violation", func(t *testing.T) {
		_, err := customerorder.NewOrder(
			kernel.NewUUID(), kernel.UUID{}, time.Time{}, time.Time{},
			customerorder.StatusUnknown, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t,
			"order date is invalid"+
				"order time is invalid"+
				"client is invalid"+
				"order state is invalid"+
				"order has no items",
			err.Error())
	})

	t.Run("non-positive portions rejected", func(t *testing.T) {
		_, err := customerorder.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), now, now,
			customerorder.Registered, validItems(t, 0))

		require.Error(t, err)
		assert.Equal(t, "portion quantity must be greater than zero", err.Error())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("full forward walk", func(t *testing.T) {
		o := registeredOrder(t)
		readyMoment := time.Now()
		doneMoment := readyMoment.Add(40 * time.Minute)
		deliveryPerson := kernel.NewUUID()

		require.NoError(t, o.StartProduction())
		assert.Equal(t, customerorder.Production, o.Status())

		require.NoError(t, o.MarkReady(readyMoment))
		assert.Equal(t, customerorder.Ready, o.Status())
		require.NotNil(t, o.ReadyAt())
		assert.Equal(t, readyMoment, *o.ReadyAt())

		require.NoError(t, o.StartDelivery(deliveryPerson))
		assert.Equal(t, customerorder.Delivery, o.Status())
		require.NotNil(t, o.DeliveryPerson())
		assert.True(t, deliveryPerson.IsEqual(*o.DeliveryPerson()))

		require.NoError(t, o.Complete(doneMoment))
		assert.Equal(t, customerorder.Completed, o.Status())
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, doneMoment, *o.CompletedAt())
	})

	t.Run("skipping a state fails", func(t *testing.T) {
		o := registeredOrder(t)

		err := o.MarkReady(time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, "order in REGISTERED state cannot move to READY", err.Error())
	})

	t.Run("moving backward fails", func(t *testing.T) {
		o := registeredOrder(t)
		require.NoError(t, o.StartProduction())
		require.NoError(t, o.MarkReady(time.Now()))

		err := o.StartProduction()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		o := registeredOrder(t)
		require.NoError(t, o.StartProduction())
		require.NoError(t, o.MarkReady(time.Now()))
		require.NoError(t, o.StartDelivery(kernel.NewUUID()))
		require.NoError(t, o.Complete(time.Now()))

		err := o.Complete(time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("delivery without person fails", func(t *testing.T) {
		o := registeredOrder(t)
		require.NoError(t, o.StartProduction())
		require.NoError(t, o.MarkReady(time.Now()))

		err := o.StartDelivery(kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, "delivery person is invalid", err.Error())
		assert.Equal(t, customerorder.Ready, o.Status())
		assert.Nil(t, o.DeliveryPerson())
	})
}

func TestOrder_UpdateComposition(t *testing.T) {
	now := time.Now()

	t.Run("allowed while registered", func(t *testing.T) {
		o := registeredOrder(t)
		newClient := kernel.NewUUID()

		require.NoError(t, o.UpdateComposition(newClient, now, now, validItems(t, 5)))
		assert.True(t, newClient.IsEqual(o.Client()))
		assert.Equal(t, 5, o.Items()[0].Portions())
	})

	t.Run("allowed while in production", func(t *testing.T) {
		o := registeredOrder(t)
		require.NoError(t, o.StartProduction())

		require.NoError(t, o.UpdateComposition(kernel.NewUUID(), now, now, validItems(t, 9)))
	})

	t.Run("locked from ready onward", func(t *testing.T) {
		o := registeredOrder(t)
		require.NoError(t, o.StartProduction())
		require.NoError(t, o.MarkReady(time.Now()))

		err := o.UpdateComposition(kernel.NewUUID(), now, now, validItems(t, 9))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, "order already locked, cannot be altered", err.Error())
	})

	t.Run("update revalidates the whole composition", func(t *testing.T) {
		o := registeredOrder(t)

		err := o.UpdateComposition(kernel.UUID{}, time.Time{}, time.Time{}, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t,
			"order date is invalid"+
				"order time is invalid"+
				"client is invalid"+
				"order has no items",
			err.Error())
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now()

	t.Run("restores assignment and timestamps", func(t *testing.T) {
		deliveryPerson := kernel.NewUUID()
		readyAt := now.Add(-time.Hour)
		completedAt := now.Add(-30 * time.Minute)

		o, err := customerorder.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), &deliveryPerson,
			now, now, customerorder.Completed, validItems(t, 4),
			&readyAt, &completedAt)

		require.NoError(t, err)
		assert.Equal(t, customerorder.Completed, o.Status())
		require.NotNil(t, o.DeliveryPerson())
		assert.Equal(t, readyAt, *o.ReadyAt())
		assert.Equal(t, completedAt, *o.CompletedAt())
	})

	t.Run("delivery person before delivery state is inconsistent", func(t *testing.T) {
		deliveryPerson := kernel.NewUUID()

		_, err := customerorder.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), &deliveryPerson,
			now, now, customerorder.Registered, validItems(t, 4),
			nil, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("delivery state without person is inconsistent", func(t *testing.T) {
		_, err := customerorder.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			now, now, customerorder.Delivery, validItems(t, 4),
			nil, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusFromString(t *testing.T) {
	for name, want := range map[string]customerorder.Status{
		"REGISTERED": customerorder.Registered,
		"PRODUCTION": customerorder.Production,
		"READY":      customerorder.Ready,
		"DELIVERY":   customerorder.Delivery,
		"COMPLETED":  customerorder.Completed,
	} {
		status, err := customerorder.StatusFromString(name)
		require.NoError(t, err)
		assert.Equal(t, want, status)
		assert.Equal(t, name, status.String())
	}

	_, err := customerorder.StatusFromString("CANCELLED")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
