package facilityrepo

import (
	"context"
	"errors"

	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFacilityRepository implements ports.FacilityRepository using GORM.
type GormFacilityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFacilityRepository creates a new GORM facility repository.
func NewGormFacilityRepository(db *gorm.DB, tracker aggregateTracker) *GormFacilityRepository {
	return &GormFacilityRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new facility to the database.
func (r *GormFacilityRepository) Add(ctx context.Context, aggregate *facility.Facility) error {
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

// Update saves an existing facility to the database. Zero fields are written
// too so a stock count dropping to zero persists.
func (r *GormFacilityRepository) Update(ctx context.Context, aggregate *facility.Facility) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&FacilityDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a facility by ID.
func (r *GormFacilityRepository) Get(ctx context.Context, id kernel.UUID) (*facility.Facility, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FacilityDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("facility", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered facility.
func (r *GormFacilityRepository) GetAll(ctx context.Context) ([]*facility.Facility, error) {
	var dtos []FacilityDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetHubs retrieves hub facilities ordered by priority rank.
func (r *GormFacilityRepository) GetHubs(ctx context.Context) ([]*facility.Facility, error) {
	var dtos []FacilityDTO
	if err := r.db.WithContext(ctx).
		Where("is_hub = ?", true).
		Order("hub_priority").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []FacilityDTO) ([]*facility.Facility, error) {
	facilities := make([]*facility.Facility, 0, len(dtos))
	for _, dto := range dtos {
		f, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		facilities = append(facilities, f)
	}

	return facilities, nil
}
