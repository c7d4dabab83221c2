package queries

import (
	"context"
	"database/sql"
	"errors"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/shipment"
	"freightline/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCurrentLegQueryHandler resolves the active leg of a shipment straight
// from the database, bypassing the aggregate. Delivered and failed shipments
// have no active leg.
type GetCurrentLegQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentLegQueryHandler creates a handler for current-leg lookups.
func NewGetCurrentLegQueryHandler(db *gorm.DB) GetCurrentLegQueryHandler {
	return GetCurrentLegQueryHandler{db: db}
}

// Handle executes the lookup. Returns ErrObjectNotFound when the shipment
// does not exist or every leg already finished.
func (h GetCurrentLegQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentLegQuery,
) (GetCurrentLegQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCurrentLegQueryResponse{}, err
	}

	// A failed shipment keeps its later legs Pending, so filtering on leg
	// status alone would present one of them as current. The parent shipment
	// must still be live.
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.sequence,
			l.is_final,
			l.status,
			l.from_facility_id,
			l.to_facility_id,
			l.carrier_id,
			l.distance_km,
			l.estimated_hours
		FROM shipment_legs l
		JOIN shipments s ON s.id = l.shipment_id
		WHERE l.shipment_id = ?
		  AND s.status NOT IN (?, ?)
		  AND l.status IN (?, ?)
		ORDER BY l.sequence
		LIMIT 1
	`, query.ShipmentID().Bytes(),
		shipment.Delivered, shipment.Failed,
		shipment.LegPending, shipment.LegInTransit).Row()

	var (
		id             uuid.UUID
		sequence       int
		isFinal        bool
		status         int
		fromFacilityID uuid.UUID
		toFacilityID   uuid.NullUUID
		carrierID      uuid.NullUUID
		distanceKm     float64
		estimatedHours float64
	)

	err := row.Scan(
		&id,
		&sequence,
		&isFinal,
		&status,
		&fromFacilityID,
		&toFacilityID,
		&carrierID,
		&distanceKm,
		&estimatedHours,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetCurrentLegQueryResponse{},
			errs.NewObjectNotFoundError("current leg", query.ShipmentID().String())
	}
	if err != nil {
		return GetCurrentLegQueryResponse{}, err
	}

	legID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetCurrentLegQueryResponse{}, err
	}

	fromID, err := kernel.UUIDFromBytes(fromFacilityID[:])
	if err != nil {
		return GetCurrentLegQueryResponse{}, err
	}

	toID, err := optionalUUID(toFacilityID)
	if err != nil {
		return GetCurrentLegQueryResponse{}, err
	}

	legCarrierID, err := optionalUUID(carrierID)
	if err != nil {
		return GetCurrentLegQueryResponse{}, err
	}

	return GetCurrentLegQueryResponse{
		LegID:          legID,
		ShipmentID:     query.ShipmentID(),
		Sequence:       sequence,
		IsFinal:        isFinal,
		Status:         shipment.LegStatus(status),
		FromFacilityID: fromID,
		ToFacilityID:   toID,
		CarrierID:      legCarrierID,
		DistanceKm:     distanceKm,
		EstimatedHours: estimatedHours,
	}, nil
}

// optionalUUID converts a nullable database uuid into a kernel id pointer.
func optionalUUID(value uuid.NullUUID) (*kernel.UUID, error) {
	if !value.Valid {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes(value.UUID[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}
