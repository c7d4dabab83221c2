package commands

import (
	"context"

	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/receipt"
	"freightline/internal/core/domain/services"
	"freightline/internal/pkg/lockset"
)

// PostInboundReceiptCommandHandler posts an inbound receipt against a
// facility's stock. Postings against one facility are serialized through the
// lock set; the ledger validates every line before anything mutates.
type PostInboundReceiptCommandHandler struct {
	uowFactory ReceiptUoWFactory
	locks      *lockset.LockSet
}

// NewPostInboundReceiptCommandHandler creates a handler for inbound postings.
func NewPostInboundReceiptCommandHandler(
	uowFactory ReceiptUoWFactory,
	locks *lockset.LockSet,
) PostInboundReceiptCommandHandler {
	return PostInboundReceiptCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle processes the inbound posting.
// Loads the facility with its records and slots, applies the ledger, and
// persists the receipt, the touched aggregates, and the audit trail together.
func (h PostInboundReceiptCommandHandler) Handle(ctx context.Context, command PostInboundReceiptCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	unlock := h.locks.Lock(command.FacilityID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trackedFacility, err := uow.FacilityRepository().Get(ctx, command.FacilityID())
	if err != nil {
		return err
	}

	postedReceipt, err := receipt.NewReceipt(
		command.ReceiptID(),
		command.Code(),
		receipt.Inbound,
		command.FacilityID(),
		command.OrderID(),
		command.ActorID(),
		command.PostedAt(),
		command.Notes(),
		command.Lines(),
	)
	if err != nil {
		return err
	}

	records, slots, allRecords, err := loadFacilityStock(ctx, uow, command.FacilityID())
	if err != nil {
		return err
	}

	posting, err := services.NewStockLedger().PostInbound(postedReceipt, trackedFacility, records, slots, allRecords)
	if err != nil {
		return err
	}

	if err = persistPosting(ctx, uow, postedReceipt, trackedFacility, posting); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// loadFacilityStock loads the facility's records and slots keyed the way the
// stock ledger consumes them.
func loadFacilityStock(
	ctx context.Context,
	uow ReceiptUoW,
	facilityID kernel.UUID,
) (map[kernel.UUID]*facility.StockRecord, map[kernel.UUID]*facility.StorageSlot, []*facility.StockRecord, error) {
	stockRepo := uow.StockRepository()

	allRecords, err := stockRepo.GetRecordsByFacility(ctx, facilityID)
	if err != nil {
		return nil, nil, nil, err
	}

	records := make(map[kernel.UUID]*facility.StockRecord, len(allRecords))
	for _, record := range allRecords {
		records[record.PackageID()] = record
	}

	allSlots, err := stockRepo.GetSlotsByFacility(ctx, facilityID)
	if err != nil {
		return nil, nil, nil, err
	}

	slots := make(map[kernel.UUID]*facility.StorageSlot, len(allSlots))
	for _, slot := range allSlots {
		slots[slot.ID()] = slot
	}

	return records, slots, allRecords, nil
}

// persistPosting writes everything a ledger posting produced in one unit of
// work: the receipt, touched records and slots, audit entries, and the
// facility's refreshed stock aggregate.
func persistPosting(
	ctx context.Context,
	uow ReceiptUoW,
	postedReceipt *receipt.Receipt,
	trackedFacility *facility.Facility,
	posting *services.Posting,
) error {
	stockRepo := uow.StockRepository()

	for _, record := range posting.Records {
		if posting.Created[record.ID()] {
			if err := stockRepo.AddRecord(ctx, record); err != nil {
				return err
			}
			continue
		}
		if err := stockRepo.UpdateRecord(ctx, record); err != nil {
			return err
		}
	}

	for _, slot := range posting.Slots {
		if err := stockRepo.UpdateSlot(ctx, slot); err != nil {
			return err
		}
	}

	for _, entry := range posting.Entries {
		if err := stockRepo.AddAuditEntry(ctx, entry); err != nil {
			return err
		}
	}

	if err := uow.ReceiptRepository().Add(ctx, postedReceipt); err != nil {
		return err
	}

	return uow.FacilityRepository().Update(ctx, trackedFacility)
}
