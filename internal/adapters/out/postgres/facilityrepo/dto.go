// Package facilityrepo persists the facility aggregate and implements
// ports.FacilityRepository.
package facilityrepo

import (
	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FacilityDTO is the database row for a facility aggregate.
type FacilityDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code         string    `gorm:"uniqueIndex"`
	Name         string
	Address      string
	IsHub        bool `gorm:"index"`
	HubPriority  int
	CurrentStock int
}

// TableName overrides GORM's default naming to use "facilities".
func (FacilityDTO) TableName() string {
	return "facilities"
}

func fromDomain(aggregate *facility.Facility) FacilityDTO {
	return FacilityDTO{
		ID:           aggregate.ID().Bytes(),
		Code:         aggregate.Code(),
		Name:         aggregate.Name(),
		Address:      aggregate.Address(),
		IsHub:        aggregate.IsHub(),
		HubPriority:  aggregate.HubPriority(),
		CurrentStock: aggregate.CurrentStock(),
	}
}

func toDomain(dto FacilityDTO) (*facility.Facility, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return facility.RestoreFacility(
		id,
		dto.Code,
		dto.Name,
		dto.Address,
		dto.IsHub,
		dto.HubPriority,
		dto.CurrentStock,
	)
}
