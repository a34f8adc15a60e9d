// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. GeocodeBackfillJob - Periodically resolves coordinates for deliveries whose addresses could not be geocoded when they were accepted
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(backfillHandler, "*/30 * * * * *", 50, logger)
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
// The backfill job takes its cron expression (with a seconds field) from
// configuration, so operators can tune it to the geocoding provider's rate
// limits.
//
// # Error Handling
//
// - A geocoder outage skips the affected deliveries; they are retried on the next run
// - Failed job starts will stop any already running jobs
package jobs
