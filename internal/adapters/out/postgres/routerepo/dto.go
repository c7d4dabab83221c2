// Package routerepo persists route edges of the facility graph and implements
// ports.RouteRepository.
package routerepo

import (
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/routing"

	"github.com/google/uuid"
)

// EdgeDTO is the database row for a directed route edge.
type EdgeDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FromFacilityID     uuid.UUID  `gorm:"type:uuid;index"`
	ToFacilityID       uuid.UUID  `gorm:"type:uuid;index"`
	PreferredCarrierID *uuid.UUID `gorm:"type:uuid"`
	DistanceKm         float64
	EstimatedHours     float64
	IsActive           bool `gorm:"index"`
}

// TableName overrides GORM's default naming to use "route_edges".
func (EdgeDTO) TableName() string {
	return "route_edges"
}

func fromDomain(aggregate *routing.Edge) EdgeDTO {
	var carrierID *uuid.UUID
	if id := aggregate.PreferredCarrierID(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	return EdgeDTO{
		ID:                 aggregate.ID().Bytes(),
		FromFacilityID:     aggregate.FromFacilityID().Bytes(),
		ToFacilityID:       aggregate.ToFacilityID().Bytes(),
		PreferredCarrierID: carrierID,
		DistanceKm:         aggregate.DistanceKm(),
		EstimatedHours:     aggregate.EstimatedHours(),
		IsActive:           aggregate.IsActive(),
	}
}

func toDomain(dto EdgeDTO) (*routing.Edge, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	fromID, err := kernel.UUIDFromBytes(dto.FromFacilityID[:])
	if err != nil {
		return nil, err
	}

	toID, err := kernel.UUIDFromBytes(dto.ToFacilityID[:])
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.PreferredCarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.PreferredCarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}

		carrierID = &cID
	}

	return routing.RestoreEdge(
		id,
		fromID,
		toID,
		carrierID,
		dto.DistanceKm,
		dto.EstimatedHours,
		dto.IsActive,
	)
}
