// Package jobs provides scheduled background tasks for the restaurant
// backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the request path does not cover.
//
// # Available Jobs
//
// 1. RestockAlertJob - Runs every minute to flag products whose derived
// on-hand stock fell below their configured minimum
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(belowMinimumHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The restock check logs failures and keeps the schedule; a transient
// database error on one tick does not stop future ticks.
package jobs
