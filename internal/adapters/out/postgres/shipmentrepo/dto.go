// Package shipmentrepo persists the shipment aggregate together with its leg
// run and implements ports.ShipmentRepository. A shipment always loads and
// stores with every leg; legs are never written on their own.
package shipmentrepo

import (
	"time"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO is the database row for a shipment aggregate header.
type ShipmentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code           string    `gorm:"uniqueIndex"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	CarrierID      *uuid.UUID `gorm:"type:uuid"`
	Status         int        `gorm:"index"`
	PickupTime     *time.Time
	DeliveryTime   *time.Time
	Notes          string
	ProofReference string
	NeedsAttention bool

	Legs []LegDTO `gorm:"foreignKey:ShipmentID;references:ID"`
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// LegDTO is the database row for one leg of a shipment's run.
type LegDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentID     uuid.UUID  `gorm:"type:uuid;index"`
	OrderID        uuid.UUID  `gorm:"type:uuid"`
	FromFacilityID uuid.UUID  `gorm:"type:uuid"`
	ToFacilityID   *uuid.UUID `gorm:"type:uuid"`
	CarrierID      *uuid.UUID `gorm:"type:uuid"`
	Sequence       int
	IsFinal        bool
	Status         int
	PickupTime     *time.Time
	DeliveryTime   *time.Time
	FailureReason  string
	DistanceKm     float64
	EstimatedHours float64
}

// TableName overrides GORM's default naming to use "shipment_legs".
func (LegDTO) TableName() string {
	return "shipment_legs"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	legs := aggregate.Legs()
	legDTOs := make([]LegDTO, 0, len(legs))
	for _, leg := range legs {
		legDTOs = append(legDTOs, legFromDomain(leg))
	}

	return ShipmentDTO{
		ID:             aggregate.ID().Bytes(),
		Code:           aggregate.Code(),
		OrderID:        aggregate.OrderID().Bytes(),
		CarrierID:      optionalBytes(aggregate.CarrierID()),
		Status:         int(aggregate.Status()),
		PickupTime:     aggregate.PickupTime(),
		DeliveryTime:   aggregate.DeliveryTime(),
		Notes:          aggregate.Notes(),
		ProofReference: aggregate.ProofReference(),
		NeedsAttention: aggregate.NeedsAttention(),
		Legs:           legDTOs,
	}
}

func legFromDomain(leg *shipment.Leg) LegDTO {
	return LegDTO{
		ID:             leg.ID().Bytes(),
		ShipmentID:     leg.ShipmentID().Bytes(),
		OrderID:        leg.OrderID().Bytes(),
		FromFacilityID: leg.FromFacilityID().Bytes(),
		ToFacilityID:   optionalBytes(leg.ToFacilityID()),
		CarrierID:      optionalBytes(leg.CarrierID()),
		Sequence:       leg.Sequence(),
		IsFinal:        leg.IsFinal(),
		Status:         int(leg.Status()),
		PickupTime:     leg.PickupTime(),
		DeliveryTime:   leg.DeliveryTime(),
		FailureReason:  leg.FailureReason(),
		DistanceKm:     leg.DistanceKm(),
		EstimatedHours: leg.EstimatedHours(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	carrierID, err := optionalKernel(dto.CarrierID)
	if err != nil {
		return nil, err
	}

	legs := make([]*shipment.Leg, 0, len(dto.Legs))
	for _, legDTO := range dto.Legs {
		leg, legErr := legToDomain(legDTO)
		if legErr != nil {
			return nil, legErr
		}
		legs = append(legs, leg)
	}

	return shipment.RestoreShipment(
		id,
		dto.Code,
		orderID,
		carrierID,
		shipment.Status(dto.Status),
		dto.PickupTime,
		dto.DeliveryTime,
		dto.Notes,
		dto.ProofReference,
		dto.NeedsAttention,
		legs,
	)
}

func legToDomain(dto LegDTO) (*shipment.Leg, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	fromID, err := kernel.UUIDFromBytes(dto.FromFacilityID[:])
	if err != nil {
		return nil, err
	}

	toID, err := optionalKernel(dto.ToFacilityID)
	if err != nil {
		return nil, err
	}

	carrierID, err := optionalKernel(dto.CarrierID)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreLeg(
		id,
		shipmentID,
		orderID,
		fromID,
		toID,
		carrierID,
		dto.Sequence,
		dto.IsFinal,
		shipment.LegStatus(dto.Status),
		dto.PickupTime,
		dto.DeliveryTime,
		dto.FailureReason,
		dto.DistanceKm,
		dto.EstimatedHours,
	)
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}

	raw := id.Bytes()
	return &raw
}

func optionalKernel(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}
