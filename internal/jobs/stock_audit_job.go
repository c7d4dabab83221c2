package jobs

import (
	"context"
	"log/slog"

	"freightline/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StockAuditJob periodically sweeps all facilities and logs every stock
// aggregate that drifted from the ledger. The sweep never mutates state.
type StockAuditJob struct {
	handler commands.AuditStockCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStockAuditJob creates a job running the stock audit sweep every minute.
func NewStockAuditJob(handler commands.AuditStockCommandHandler, logger *slog.Logger) *StockAuditJob {
	return &StockAuditJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stock_audit_job"),
	}
}

// Start begins the stock audit job to run every minute.
func (j *StockAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAuditStockCommand()

		drifts, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stock audit sweep failed", "error", err)
			return
		}

		for _, drift := range drifts {
			j.logger.WarnContext(ctx, "Stock aggregate drifted from ledger",
				"facility_id", drift.FacilityID.String(),
				"facility_code", drift.FacilityCode,
				"stored_stock", drift.StoredStock,
				"computed_stock", drift.ComputedStock,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock audit job started (running every minute)")
	return nil
}

// Stop stops the stock audit job.
func (j *StockAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stock audit job stopped")
}
