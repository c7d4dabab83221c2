// Package jobs provides scheduled background tasks for the freight system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the freight service.
//
// # Available Jobs
//
// 1. StockAuditJob - Runs every minute to compare each facility's stored
// stock aggregate against the sum of remaining quantities in its stock
// records, logging every drift it finds.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(auditStockHandler, logger)
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
// The audit job uses the cron expression "0 * * * * *" which means it runs
// at the top of every minute. The sweep is read-only, so overlapping
// application writes are safe.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - Drift findings are warnings; correcting an aggregate stays manual
// - Failed job starts abort application startup
package jobs
