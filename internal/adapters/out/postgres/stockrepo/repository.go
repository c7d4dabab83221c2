package stockrepo

import (
	"context"

	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormStockRepository implements ports.StockRepository using GORM.
// Stock records and slots are entities of the facility aggregate; the
// tracker is not used here because the owning facility is tracked by the
// facility repository in the same unit of work.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// AddRecord saves a new stock record to the database.
func (r *GormStockRepository) AddRecord(ctx context.Context, record *facility.StockRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := recordFromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateRecord saves an existing stock record. Counters may legitimately
// drop to zero, so zero fields are written too.
func (r *GormStockRepository) UpdateRecord(ctx context.Context, record *facility.StockRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := recordFromDomain(record)
	result := r.db.WithContext(ctx).Model(&StockRecordDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetRecordsByFacility retrieves all stock records of one facility.
func (r *GormStockRepository) GetRecordsByFacility(
	ctx context.Context,
	facilityID kernel.UUID,
) ([]*facility.StockRecord, error) {
	if err := facilityID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StockRecordDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "facility_id = ?", facilityID.Bytes()).Error; err != nil {
		return nil, err
	}

	records := make([]*facility.StockRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := recordToDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// AddSlot saves a new storage slot to the database.
func (r *GormStockRepository) AddSlot(ctx context.Context, slot *facility.StorageSlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	dto := slotFromDomain(slot)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateSlot saves an existing storage slot. A released slot clears its
// package reference, so zero fields are written too.
func (r *GormStockRepository) UpdateSlot(ctx context.Context, slot *facility.StorageSlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	dto := slotFromDomain(slot)
	result := r.db.WithContext(ctx).Model(&StorageSlotDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetSlotsByFacility retrieves all storage slots of one facility.
func (r *GormStockRepository) GetSlotsByFacility(
	ctx context.Context,
	facilityID kernel.UUID,
) ([]*facility.StorageSlot, error) {
	if err := facilityID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StorageSlotDTO
	if err := r.db.WithContext(ctx).
		Order("code").
		Find(&dtos, "facility_id = ?", facilityID.Bytes()).Error; err != nil {
		return nil, err
	}

	slots := make([]*facility.StorageSlot, 0, len(dtos))
	for _, dto := range dtos {
		slot, err := slotToDomain(dto)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// AddAuditEntry appends one entry to the stock audit trail.
func (r *GormStockRepository) AddAuditEntry(ctx context.Context, entry *facility.AuditEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := auditEntryFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
