// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the ordering service.
//
// # Available Jobs
//
// 1. AssignmentRequeueJob - Runs every 30 seconds to re-request driver
// assignment for delivery orders that are assignment-eligible but still
// have no driver
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(requeueHandler, logger)
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
// - The requeue job ignores the expected idle outcome (nothing unassigned)
// - Failed job starts will stop any already running jobs
package jobs
