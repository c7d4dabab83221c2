package routerepo

import (
	"context"
	"errors"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/routing"
	"freightline/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new edge to the database.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *routing.Edge) error {
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

// Update saves an existing edge to the database. Zero fields are written too
// so deactivation persists.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *routing.Edge) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EdgeDTO{}).
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

// Get retrieves an edge by ID.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*routing.Edge, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EdgeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route edge", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every active edge of the graph.
func (r *GormRouteRepository) GetAllActive(ctx context.Context) ([]*routing.Edge, error) {
	var dtos []EdgeDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "is_active = ?", true).Error; err != nil {
		return nil, err
	}

	edges := make([]*routing.Edge, 0, len(dtos))
	for _, dto := range dtos {
		edge, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		edges = append(edges, edge)
	}

	return edges, nil
}
