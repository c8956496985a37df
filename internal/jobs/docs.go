// Package jobs provides scheduled background tasks for the shipping system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the shipping service.
//
// # Available Jobs
//
// 1. OverdueShipmentJob - Periodically scans for active orders whose status
// has not moved within a configured threshold and logs them for operations
// follow-up.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueHandler, schedule, threshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The overdue scan schedule is a standard five-field cron expression taken
// from configuration, typically hourly. Stale shipments do not need
// second-level responsiveness.
//
// # Error Handling
//
// - Scan failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
