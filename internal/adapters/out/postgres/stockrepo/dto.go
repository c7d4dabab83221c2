// Package stockrepo persists a facility's stock records, storage slots, and
// the append-only stock audit trail. It implements ports.StockRepository.
package stockrepo

import (
	"time"

	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// StockRecordDTO is the database row for one package's counters at one
// facility. The (facility, package) pair is unique.
type StockRecordDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	FacilityID        uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_stock_facility_package"`
	PackageID         uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_stock_facility_package"`
	Quantity          int
	DeliveredQuantity int
	RemainingQuantity int
}

// TableName overrides GORM's default naming to use "stock_records".
func (StockRecordDTO) TableName() string {
	return "stock_records"
}

// StorageSlotDTO is the database row for a storage slot.
type StorageSlotDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FacilityID uuid.UUID `gorm:"type:uuid;index"`
	Code       string
	Status     int
	PackageID  *uuid.UUID `gorm:"type:uuid"`
}

// TableName overrides GORM's default naming to use "storage_slots".
func (StorageSlotDTO) TableName() string {
	return "storage_slots"
}

// AuditEntryDTO is one immutable row of the stock audit trail.
type AuditEntryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FacilityID    uuid.UUID `gorm:"type:uuid;index"`
	PackageID     uuid.UUID `gorm:"type:uuid;index"`
	ChangeType    int
	QuantityDelta int
	ActorID       uuid.UUID `gorm:"type:uuid"`
	Reference     string
	RecordedAt    time.Time
}

// TableName overrides GORM's default naming to use "stock_audit_entries".
func (AuditEntryDTO) TableName() string {
	return "stock_audit_entries"
}

func recordFromDomain(record *facility.StockRecord) StockRecordDTO {
	return StockRecordDTO{
		ID:                record.ID().Bytes(),
		FacilityID:        record.FacilityID().Bytes(),
		PackageID:         record.PackageID().Bytes(),
		Quantity:          record.Quantity(),
		DeliveredQuantity: record.DeliveredQuantity(),
		RemainingQuantity: record.RemainingQuantity(),
	}
}

func recordToDomain(dto StockRecordDTO) (*facility.StockRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	facilityID, err := kernel.UUIDFromBytes(dto.FacilityID[:])
	if err != nil {
		return nil, err
	}

	packageID, err := kernel.UUIDFromBytes(dto.PackageID[:])
	if err != nil {
		return nil, err
	}

	return facility.RestoreStockRecord(
		id,
		facilityID,
		packageID,
		dto.Quantity,
		dto.DeliveredQuantity,
		dto.RemainingQuantity,
	)
}

func slotFromDomain(slot *facility.StorageSlot) StorageSlotDTO {
	var packageID *uuid.UUID
	if id := slot.PackageID(); id != nil {
		raw := id.Bytes()
		packageID = &raw
	}

	return StorageSlotDTO{
		ID:         slot.ID().Bytes(),
		FacilityID: slot.FacilityID().Bytes(),
		Code:       slot.Code(),
		Status:     int(slot.Status()),
		PackageID:  packageID,
	}
}

func slotToDomain(dto StorageSlotDTO) (*facility.StorageSlot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	facilityID, err := kernel.UUIDFromBytes(dto.FacilityID[:])
	if err != nil {
		return nil, err
	}

	var packageID *kernel.UUID
	if dto.PackageID != nil {
		pID, packageErr := kernel.UUIDFromBytes((*dto.PackageID)[:])
		if packageErr != nil {
			return nil, packageErr
		}

		packageID = &pID
	}

	return facility.RestoreStorageSlot(
		id,
		facilityID,
		dto.Code,
		facility.SlotStatus(dto.Status),
		packageID,
	)
}

func auditEntryFromDomain(entry *facility.AuditEntry) AuditEntryDTO {
	return AuditEntryDTO{
		ID:            entry.ID().Bytes(),
		FacilityID:    entry.FacilityID().Bytes(),
		PackageID:     entry.PackageID().Bytes(),
		ChangeType:    int(entry.ChangeType()),
		QuantityDelta: entry.QuantityDelta(),
		ActorID:       entry.ActorID().Bytes(),
		Reference:     entry.Reference(),
		RecordedAt:    entry.RecordedAt(),
	}
}
