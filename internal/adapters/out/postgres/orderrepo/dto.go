// Package orderrepo persists the order aggregate. It maps between the domain
// model and the relational representation and implements ports.OrderRepository.
package orderrepo

import (
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database row for an order aggregate. Status and carrier
// are indexed for the query side.
type OrderDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code                  string    `gorm:"uniqueIndex"`
	OriginFacilityID      uuid.UUID `gorm:"type:uuid"`
	DestinationFacilityID uuid.UUID `gorm:"type:uuid"`
	CarrierID             *uuid.UUID `gorm:"type:uuid;index"`
	WeightKg              float64
	ServiceTier           int
	Fee                   decimal.Decimal `gorm:"type:numeric(12,2)"`
	EtaDays               int
	Status                int `gorm:"index"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var carrierID *uuid.UUID
	if id := aggregate.CarrierID(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		Code:                  aggregate.Code(),
		OriginFacilityID:      aggregate.OriginFacilityID().Bytes(),
		DestinationFacilityID: aggregate.DestinationFacilityID().Bytes(),
		CarrierID:             carrierID,
		WeightKg:              aggregate.WeightKg(),
		ServiceTier:           int(aggregate.ServiceTier()),
		Fee:                   aggregate.Fee(),
		EtaDays:               aggregate.EtaDays(),
		Status:                int(aggregate.Status()),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	originID, err := kernel.UUIDFromBytes(dto.OriginFacilityID[:])
	if err != nil {
		return nil, err
	}

	destinationID, err := kernel.UUIDFromBytes(dto.DestinationFacilityID[:])
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}

		carrierID = &cID
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		originID,
		destinationID,
		carrierID,
		dto.WeightKg,
		order.Tier(dto.ServiceTier),
		dto.Fee,
		dto.EtaDays,
		order.Status(dto.Status),
	)
}
