package queries

import (
	"context"
	"database/sql"
	"errors"

	"freightline/internal/core/domain/model/facility"
	"freightline/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStockReportQueryHandler builds a facility inventory summary from the
// database: quantity totals over all stock records plus slot utilization.
type GetStockReportQueryHandler struct {
	db *gorm.DB
}

// NewGetStockReportQueryHandler creates a handler for stock report queries.
func NewGetStockReportQueryHandler(db *gorm.DB) GetStockReportQueryHandler {
	return GetStockReportQueryHandler{db: db}
}

// Handle executes the report. Returns ErrObjectNotFound for an unregistered
// facility; a registered facility with no stock yields a zeroed report.
func (h GetStockReportQueryHandler) Handle(
	ctx context.Context,
	query GetStockReportQuery,
) (GetStockReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockReportQueryResponse{}, err
	}

	var exists int
	err := h.db.WithContext(ctx).Raw(`
		SELECT 1 FROM facilities WHERE id = ?
	`, query.FacilityID().Bytes()).Row().Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return GetStockReportQueryResponse{},
			errs.NewObjectNotFoundError("facility", query.FacilityID().String())
	}
	if err != nil {
		return GetStockReportQueryResponse{}, err
	}

	response := GetStockReportQueryResponse{FacilityID: query.FacilityID()}

	err = h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(quantity), 0),
			COALESCE(SUM(delivered_quantity), 0),
			COALESCE(SUM(remaining_quantity), 0)
		FROM stock_records
		WHERE facility_id = ?
	`, query.FacilityID().Bytes()).Row().Scan(
		&response.TotalQuantity,
		&response.TotalDelivered,
		&response.TotalRemaining,
	)
	if err != nil {
		return GetStockReportQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?)
		FROM storage_slots
		WHERE facility_id = ?
	`, facility.SlotOccupied, query.FacilityID().Bytes()).Row().Scan(
		&response.TotalSlots,
		&response.OccupiedSlots,
	)
	if err != nil {
		return GetStockReportQueryResponse{}, err
	}

	if response.TotalSlots > 0 {
		response.SlotUtilization = float64(response.OccupiedSlots) / float64(response.TotalSlots)
	}

	return response, nil
}
