package queries_test

import (
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/stock"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStockMovementQuery_Valid(t *testing.T) {
	query, err := queries.NewGetStockMovementQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetStockMovementQuery_EmptyID(t *testing.T) {
	_, err := queries.NewGetStockMovementQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetStockMovementQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStockMovementQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStockMovementQueryIsNotConstructed)
}

func TestNewGetMovementsByKindQuery_UnknownKind(t *testing.T) {
	_, err := queries.NewGetMovementsByKindQuery(stock.KindUnknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetDiscardedMovementsQuery_InvertedWindow(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	_, err := queries.NewGetDiscardedMovementsQuery(start, end)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetProductionReportQuery_RequiresBothBounds(t *testing.T) {
	_, err := queries.NewGetProductionReportQuery(time.Time{}, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListProductionOrdersQuery_HalfOpenWindowRejected(t *testing.T) {
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := queries.NewListProductionOrdersQuery(nil, &start, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListCustomerOrdersQuery_NoFilters(t *testing.T) {
	query, err := queries.NewListCustomerOrdersQuery(nil, nil, nil, nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Nil(t, query.ClientID())
	assert.Nil(t, query.Status())
}

func TestNewGetOrderLeadTimesQuery_Valid(t *testing.T) {
	query := queries.NewGetOrderLeadTimesQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllProductsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllProductsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllProductsQueryIsNotConstructed)
}
