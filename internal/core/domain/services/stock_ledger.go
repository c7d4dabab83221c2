package services

import (
	"errors"

	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/receipt"
)

var (
	// ErrStockRecordMissing is returned when an outbound line targets a
	// (facility, package) pair with no stock record.
	ErrStockRecordMissing = errors.New("no stock record for package at facility")
	// ErrSlotNotProvided is returned when a line references a storage slot the
	// caller did not load.
	ErrSlotNotProvided = errors.New("referenced storage slot was not provided")
	// ErrWrongFacility is returned when the receipt and the loaded aggregates
	// disagree on the facility.
	ErrWrongFacility = errors.New("aggregate does not belong to the receipt's facility")
	// ErrWrongKind is returned when a receipt of the wrong kind is posted.
	ErrWrongKind = errors.New("receipt kind does not match the posting")
)

// Posting is the result of a successful ledger posting: the aggregates that
// changed and the audit entries to append. The caller persists everything in
// one unit of work.
type Posting struct {
	// Records holds every stock record touched by the posting, including
	// records created for packages the facility had never seen.
	Records []*facility.StockRecord

	// Created flags which of Records are new and need an insert.
	Created map[kernel.UUID]bool

	// Slots holds every storage slot whose occupancy changed.
	Slots []*facility.StorageSlot

	// Entries is the audit trail, one entry per receipt line.
	Entries []*facility.AuditEntry
}

// StockLedger is a domain service that applies inbound and outbound receipts
// to a facility's stock records and storage slots.
//
// Both postings are all-or-nothing for the receipt: every line is validated
// against the loaded aggregates before any mutation, so a failing line leaves
// records, slots, and the facility aggregate untouched.
type StockLedger struct{}

// NewStockLedger creates a new StockLedger instance.
func NewStockLedger() StockLedger {
	return StockLedger{}
}

// PostInbound applies an inbound receipt. Records are upserted per line
// (created at zero when absent), slots named by lines become occupied by the
// line's package, and the facility's current-stock aggregate is recomputed
// over allRecords plus anything the posting created.
//
// records is keyed by package id, slots by slot id. allRecords is the
// facility's full record set used for the aggregate recomputation.
func (l StockLedger) PostInbound(
	r *receipt.Receipt,
	f *facility.Facility,
	records map[kernel.UUID]*facility.StockRecord,
	slots map[kernel.UUID]*facility.StorageSlot,
	allRecords []*facility.StockRecord,
) (*Posting, error) {
	if err := l.validateHeader(r, f, receipt.Inbound); err != nil {
		return nil, err
	}

	// Phase one: reject before mutating anything. plannedSlots tracks bindings
	// earlier lines of this receipt would make, so a within-receipt conflict is
	// caught here too.
	plannedSlots := map[kernel.UUID]kernel.UUID{}
	for _, line := range r.Lines() {
		if line.SlotID == nil {
			continue
		}
		slot, ok := slots[*line.SlotID]
		if !ok {
			return nil, ErrSlotNotProvided
		}
		if !slot.FacilityID().IsEqual(f.ID()) {
			return nil, ErrWrongFacility
		}
		if slot.Status() == facility.SlotOccupied &&
			(slot.PackageID() == nil || !slot.PackageID().IsEqual(line.PackageID)) {
			return nil, facility.ErrSlotOccupied
		}
		if bound, planned := plannedSlots[slot.ID()]; planned && !bound.IsEqual(line.PackageID) {
			return nil, facility.ErrSlotOccupied
		}
		plannedSlots[slot.ID()] = line.PackageID
	}

	posting := &Posting{Created: map[kernel.UUID]bool{}}
	touchedRecords := map[kernel.UUID]*facility.StockRecord{}
	touchedSlots := map[kernel.UUID]*facility.StorageSlot{}

	for _, line := range r.Lines() {
		record, ok := records[line.PackageID]
		if !ok {
			created, err := facility.NewStockRecord(kernel.NewUUID(), f.ID(), line.PackageID)
			if err != nil {
				return nil, err
			}
			record = created
			records[line.PackageID] = record
			allRecords = append(allRecords, record)
			posting.Created[record.ID()] = true
		} else if !record.FacilityID().IsEqual(f.ID()) {
			return nil, ErrWrongFacility
		}

		if err := record.ReceiveInbound(line.Quantity); err != nil {
			return nil, err
		}
		touchedRecords[record.ID()] = record

		if line.SlotID != nil {
			slot := slots[*line.SlotID]
			if err := slot.Occupy(line.PackageID); err != nil {
				return nil, err
			}
			touchedSlots[slot.ID()] = slot
		}

		entry, err := facility.NewAuditEntry(
			kernel.NewUUID(), f.ID(), line.PackageID,
			facility.ChangeInbound, line.Quantity,
			r.ActorID(), r.Code(), r.PostedAt(),
		)
		if err != nil {
			return nil, err
		}
		posting.Entries = append(posting.Entries, entry)
	}

	if err := refreshFacilityStock(f, allRecords); err != nil {
		return nil, err
	}

	collectPosting(posting, touchedRecords, touchedSlots)
	return posting, nil
}

// PostOutbound applies an outbound receipt. Every line must find a stock
// record with enough remaining quantity; quantities move from remaining to
// delivered, and a slot bound to a drained package is released.
func (l StockLedger) PostOutbound(
	r *receipt.Receipt,
	f *facility.Facility,
	records map[kernel.UUID]*facility.StockRecord,
	slots map[kernel.UUID]*facility.StorageSlot,
	allRecords []*facility.StockRecord,
) (*Posting, error) {
	if err := l.validateHeader(r, f, receipt.Outbound); err != nil {
		return nil, err
	}

	// Phase one: sum requested quantity per package so that two lines against
	// the same record cannot both pass individually and overdraw together.
	requested := map[kernel.UUID]int{}
	for _, line := range r.Lines() {
		record, ok := records[line.PackageID]
		if !ok {
			return nil, ErrStockRecordMissing
		}
		if !record.FacilityID().IsEqual(f.ID()) {
			return nil, ErrWrongFacility
		}

		requested[line.PackageID] += line.Quantity
		if requested[line.PackageID] > record.RemainingQuantity() {
			return nil, facility.ErrInsufficientStock
		}

		if line.SlotID != nil {
			if _, ok = slots[*line.SlotID]; !ok {
				return nil, ErrSlotNotProvided
			}
		}
	}

	posting := &Posting{Created: map[kernel.UUID]bool{}}
	touchedRecords := map[kernel.UUID]*facility.StockRecord{}
	touchedSlots := map[kernel.UUID]*facility.StorageSlot{}

	for _, line := range r.Lines() {
		record := records[line.PackageID]
		if err := record.IssueOutbound(line.Quantity); err != nil {
			return nil, err
		}
		touchedRecords[record.ID()] = record

		// A slot whose package has nothing left on hand is freed.
		if record.RemainingQuantity() == 0 {
			for _, slot := range slots {
				if slot.PackageID() != nil && slot.PackageID().IsEqual(line.PackageID) {
					slot.Release()
					touchedSlots[slot.ID()] = slot
				}
			}
		}

		entry, err := facility.NewAuditEntry(
			kernel.NewUUID(), f.ID(), line.PackageID,
			facility.ChangeOutbound, line.Quantity,
			r.ActorID(), r.Code(), r.PostedAt(),
		)
		if err != nil {
			return nil, err
		}
		posting.Entries = append(posting.Entries, entry)
	}

	if err := refreshFacilityStock(f, allRecords); err != nil {
		return nil, err
	}

	collectPosting(posting, touchedRecords, touchedSlots)
	return posting, nil
}

func (l StockLedger) validateHeader(r *receipt.Receipt, f *facility.Facility, kind receipt.Kind) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return err
	}
	if r.Kind() != kind {
		return ErrWrongKind
	}
	if !r.FacilityID().IsEqual(f.ID()) {
		return ErrWrongFacility
	}
	return nil
}

// refreshFacilityStock recomputes the facility aggregate as the sum of
// remaining quantity over all of its records.
func refreshFacilityStock(f *facility.Facility, records []*facility.StockRecord) error {
	total := 0
	for _, record := range records {
		if record.FacilityID().IsEqual(f.ID()) {
			total += record.RemainingQuantity()
		}
	}
	return f.RefreshCurrentStock(total)
}

func collectPosting(
	posting *Posting,
	records map[kernel.UUID]*facility.StockRecord,
	slots map[kernel.UUID]*facility.StorageSlot,
) {
	for _, record := range records {
		posting.Records = append(posting.Records, record)
	}
	for _, slot := range slots {
		posting.Slots = append(posting.Slots, slot)
	}
}
