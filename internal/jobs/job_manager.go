package jobs

import (
	"fmt"
	"log/slog"

	"freightline/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stockAuditJob *StockAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	auditStockHandler commands.AuditStockCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stockAuditJob: NewStockAuditJob(auditStockHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stockAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start stock audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stockAuditJob.Stop()
}
