// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order dispatch.
//
// # Available Jobs
//
// 1. SmartAssignmentJob - Runs every thirty seconds to assign pending orders
// to eligible delivery partners
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(runSmartAssignmentHandler, logger)
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
// The sweep uses the cron expression "*/30 * * * * *", every thirty seconds.
// Manual runs through the HTTP API are independent of the schedule.
//
// # Error Handling
//
// - Sweeps with nothing to assign are expected and not logged
// - Failed sweeps are logged and retried on the next tick
// - Scheduled sweeps do not record per-order skips in the attempt ledger
package jobs
