package shipmentrepo

import (
	"context"
	"errors"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/shipment"
	"freightline/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment and its legs to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment and its legs. The header and every leg
// row are rewritten in full: cleared fields like a reassigned leg's failure
// reason must persist as empty.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	legs := dto.Legs
	dto.Legs = nil

	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("Legs").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for _, leg := range legs {
		legResult := r.db.WithContext(ctx).Model(&LegDTO{}).
			Where("id = ?", leg.ID).
			Select("*").
			Updates(&leg)
		if legResult.Error != nil {
			return legResult.Error
		}
		if legResult.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment with its legs ordered by sequence.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Preload("Legs", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
