package commands

import (
	"context"

	"freightline/internal/core/domain/model/kernel"
)

// StockDrift reports one facility whose stored stock aggregate disagrees
// with the sum of remaining quantities over its stock records.
type StockDrift struct {
	FacilityID    kernel.UUID
	FacilityCode  string
	StoredStock   int
	ComputedStock int
}

// AuditStockCommandHandler sweeps all facilities and reports ledger drift.
// The sweep is read-only; correcting a drifted aggregate stays a manual
// operation.
type AuditStockCommandHandler struct {
	uowFactory AuditUoWFactory
}

// NewAuditStockCommandHandler creates a handler for stock audit sweeps.
func NewAuditStockCommandHandler(uowFactory AuditUoWFactory) AuditStockCommandHandler {
	return AuditStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs the sweep and returns every drifted facility. An empty slice
// means the ledger and the aggregates agree.
func (h AuditStockCommandHandler) Handle(ctx context.Context, command AuditStockCommand) ([]StockDrift, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	facilityRepo := uow.FacilityRepository()
	stockRepo := uow.StockRepository()

	facilities, err := facilityRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	drifts := make([]StockDrift, 0)
	for _, trackedFacility := range facilities {
		records, recordsErr := stockRepo.GetRecordsByFacility(ctx, trackedFacility.ID())
		if recordsErr != nil {
			return nil, recordsErr
		}

		computed := 0
		for _, record := range records {
			computed += record.RemainingQuantity()
		}

		if computed != trackedFacility.CurrentStock() {
			drifts = append(drifts, StockDrift{
				FacilityID:    trackedFacility.ID(),
				FacilityCode:  trackedFacility.Code(),
				StoredStock:   trackedFacility.CurrentStock(),
				ComputedStock: computed,
			})
		}
	}

	return drifts, nil
}
