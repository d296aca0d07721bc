package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetOrderLeadTimesQueryHandler computes the average lead time metrics
// in SQL over the captured transition timestamps.
type GetOrderLeadTimesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderLeadTimesQueryHandler creates a handler for the lead time
// metrics.
func NewGetOrderLeadTimesQueryHandler(db *gorm.DB) GetOrderLeadTimesQueryHandler {
	return GetOrderLeadTimesQueryHandler{db: db}
}

// Handle executes the query. COALESCE turns an empty population into
// zero rather than an error or a NULL scan failure.
func (h GetOrderLeadTimesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderLeadTimesQuery,
) (OrderLeadTimesResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderLeadTimesResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE((
				SELECT AVG(EXTRACT(EPOCH FROM (ready_at - registered_at)))
				FROM customer_orders
				WHERE ready_at IS NOT NULL
			), 0) AS average_to_ready,
			COALESCE((
				SELECT AVG(EXTRACT(EPOCH FROM (completed_at - ready_at)))
				FROM customer_orders
				WHERE completed_at IS NOT NULL AND ready_at IS NOT NULL
			), 0) AS average_to_completion
	`).Row()

	var toReadySeconds, toCompletionSeconds float64
	if err := row.Scan(&toReadySeconds, &toCompletionSeconds); err != nil {
		return OrderLeadTimesResponse{}, err
	}

	return OrderLeadTimesResponse{
		AverageToReady:      time.Duration(toReadySeconds * float64(time.Second)),
		AverageToCompletion: time.Duration(toCompletionSeconds * float64(time.Second)),
	}, nil
}
