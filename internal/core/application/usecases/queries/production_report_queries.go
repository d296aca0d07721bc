package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetProductionReportQueryIsNotConstructed = errors.New(
		"GetProductionReportQuery must be created via NewGetProductionReportQuery constructor",
	)
	ErrGetProducedTotalsQueryIsNotConstructed = errors.New(
		"GetProducedTotalsQuery must be created via NewGetProducedTotalsQuery constructor",
	)
)

// ProductionReportItem is one costed line of the production report:
// the preparation cost multiplied by the portions produced.
type ProductionReportItem struct {
	PreparedItemName string
	Portions         int
	PreparationCost  decimal.Decimal
	Value            decimal.Decimal
}

// ProductionOrderReport is the costed breakdown of one production
// order inside the report window.
type ProductionOrderReport struct {
	OrderID        kernel.UUID
	ProductionDate time.Time
	Items          []ProductionReportItem
	Total          decimal.Decimal
}

// ProductionReportResponse is the windowed cost report: every order
// with a production date inside the window, each broken down per item,
// plus the grand total across all of them.
type ProductionReportResponse struct {
	Orders     []ProductionOrderReport
	GrandTotal decimal.Decimal
}

// GetProductionReportQuery retrieves the costed production report over
// an inclusive date window.
type GetProductionReportQuery struct {
	dateStart time.Time
	dateEnd   time.Time

	guard guard.ConstructorGuard
}

// NewGetProductionReportQuery creates a windowed cost report query.
func NewGetProductionReportQuery(dateStart, dateEnd time.Time) (GetProductionReportQuery, error) {
	if dateStart.IsZero() {
		return GetProductionReportQuery{}, errs.NewValueIsRequiredError("date_start")
	}
	if dateEnd.IsZero() {
		return GetProductionReportQuery{}, errs.NewValueIsRequiredError("date_end")
	}
	if dateEnd.Before(dateStart) {
		return GetProductionReportQuery{}, errs.NewValueIsInvalidError("date_end")
	}

	return GetProductionReportQuery{
		dateStart: dateStart,
		dateEnd:   dateEnd,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductionReportQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionReportQueryIsNotConstructed)
}

// DateStart returns the inclusive window start.
func (q GetProductionReportQuery) DateStart() time.Time { return q.dateStart }

// DateEnd returns the inclusive window end.
func (q GetProductionReportQuery) DateEnd() time.Time { return q.dateEnd }

// GetProducedTotalsQuery retrieves, per prepared item name, the total
// portions produced by PROCESSED orders inside an inclusive date
// window. Drives purchasing decisions.
type GetProducedTotalsQuery struct {
	dateStart time.Time
	dateEnd   time.Time

	guard guard.ConstructorGuard
}

// NewGetProducedTotalsQuery creates a windowed produced totals query.
func NewGetProducedTotalsQuery(dateStart, dateEnd time.Time) (GetProducedTotalsQuery, error) {
	if dateStart.IsZero() {
		return GetProducedTotalsQuery{}, errs.NewValueIsRequiredError("date_start")
	}
	if dateEnd.IsZero() {
		return GetProducedTotalsQuery{}, errs.NewValueIsRequiredError("date_end")
	}
	if dateEnd.Before(dateStart) {
		return GetProducedTotalsQuery{}, errs.NewValueIsInvalidError("date_end")
	}

	return GetProducedTotalsQuery{
		dateStart: dateStart,
		dateEnd:   dateEnd,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProducedTotalsQuery) Validate() error {
	return q.guard.Validate(ErrGetProducedTotalsQueryIsNotConstructed)
}

// DateStart returns the inclusive window start.
func (q GetProducedTotalsQuery) DateStart() time.Time { return q.dateStart }

// DateEnd returns the inclusive window end.
func (q GetProducedTotalsQuery) DateEnd() time.Time { return q.dateEnd }
