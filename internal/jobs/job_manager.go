package jobs

import (
	"fmt"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	restockAlertJob *RestockAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	belowMinimumHandler queries.GetProductsBelowMinimumQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		restockAlertJob: NewRestockAlertJob(belowMinimumHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.restockAlertJob.Start(); err != nil {
		return fmt.Errorf("failed to start restock alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.restockAlertJob.Stop()
}
