// Package carrierrepo persists the carrier aggregate and implements
// ports.CarrierRepository.
package carrierrepo

import (
	"freightline/internal/core/domain/model/carrier"
	"freightline/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO is the database row for a carrier aggregate. The delivery
// counters move together with the aggregate on every update.
type CarrierDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                 string
	IsActive             bool `gorm:"index"`
	TotalDeliveries      int
	SuccessfulDeliveries int
	FailedDeliveries     int
}

// TableName overrides GORM's default naming to use "carriers".
func (CarrierDTO) TableName() string {
	return "carriers"
}

func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:                   aggregate.ID().Bytes(),
		Name:                 aggregate.Name(),
		IsActive:             aggregate.IsActive(),
		TotalDeliveries:      aggregate.TotalDeliveries(),
		SuccessfulDeliveries: aggregate.SuccessfulDeliveries(),
		FailedDeliveries:     aggregate.FailedDeliveries(),
	}
}

func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(
		id,
		dto.Name,
		dto.IsActive,
		dto.TotalDeliveries,
		dto.SuccessfulDeliveries,
		dto.FailedDeliveries,
	)
}
