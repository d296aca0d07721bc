package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// RestockAlertJob periodically checks the stock ledger for products
// whose on-hand quantity fell below their minimum and logs a warning
// for each, so the kitchen can reorder before running out.
type RestockAlertJob struct {
	handler queries.GetProductsBelowMinimumQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRestockAlertJob creates the restock alert job. The check runs
// once a minute; stock only moves through explicit ledger entries, so
// a tighter schedule would just repeat the same answer.
func NewRestockAlertJob(handler queries.GetProductsBelowMinimumQueryHandler, logger *slog.Logger) *RestockAlertJob {
	return &RestockAlertJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "restock_alert_job"),
	}
}

// Start begins the restock alert job to run every minute.
func (j *RestockAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		products, err := j.handler.Handle(ctx, queries.NewGetProductsBelowMinimumQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Restock alert check failed", "error", err)
			return
		}

		for _, product := range products {
			j.logger.WarnContext(ctx, "Product below minimum stock",
				"product_id", product.ID,
				"product_name", product.Name,
				"on_hand", product.OnHand,
				"minimum_stock", product.MinimumStock)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Restock alert job started (running every minute)")
	return nil
}

// Stop stops the restock alert job.
func (j *RestockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Restock alert job stopped")
}
