package queries

import (
	"errors"
	"time"

	"restaurant/internal/pkg/guard"
)

var ErrGetOrderLeadTimesQueryIsNotConstructed = errors.New(
	"GetOrderLeadTimesQuery must be created via NewGetOrderLeadTimesQuery constructor",
)

// OrderLeadTimesResponse carries the kitchen's average lead times.
// AverageToReady spans registration to the READY transition;
// AverageToCompletion spans READY to COMPLETED. Both are zero when no
// order has reached the corresponding state yet.
type OrderLeadTimesResponse struct {
	AverageToReady      time.Duration
	AverageToCompletion time.Duration
}

// GetOrderLeadTimesQuery retrieves the average lead time metrics.
// Averages are computed over the timestamps captured at transition
// time, never recomputed from wall clocks at query time.
type GetOrderLeadTimesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderLeadTimesQuery creates a lead time metrics query.
func NewGetOrderLeadTimesQuery() GetOrderLeadTimesQuery {
	return GetOrderLeadTimesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderLeadTimesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLeadTimesQueryIsNotConstructed)
}
