package queries

import (
	"errors"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/guard"
)

var ErrGetStockReportQueryIsNotConstructed = errors.New(
	"GetStockReportQuery must be created via NewGetStockReportQuery constructor",
)

// GetStockReportQuery summarizes a facility's inventory: stock totals across
// every package plus storage slot utilization.
//
// Example:
//
//	query, err := NewGetStockReportQuery(facilityID)
//	if err != nil {
//	    return err
//	}
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build stock report: %w", err)
//	}
//
//	fmt.Printf("%d units on hand, %.0f%% of slots occupied\n",
//	    report.TotalRemaining, report.SlotUtilization*100)
type GetStockReportQuery struct {
	facilityID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockReportQuery creates a query for a facility inventory report.
func NewGetStockReportQuery(facilityID kernel.UUID) (GetStockReportQuery, error) {
	if err := facilityID.Validate(); err != nil {
		return GetStockReportQuery{}, err
	}

	return GetStockReportQuery{
		facilityID: facilityID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockReportQuery) Validate() error {
	return q.guard.Validate(ErrGetStockReportQueryIsNotConstructed)
}

// FacilityID returns the facility being reported on.
func (q GetStockReportQuery) FacilityID() kernel.UUID {
	return q.facilityID
}

// GetStockReportQueryResponse aggregates a facility's stock position.
// SlotUtilization is zero when the facility has no slots.
type GetStockReportQueryResponse struct {
	FacilityID      kernel.UUID
	TotalQuantity   int
	TotalDelivered  int
	TotalRemaining  int
	TotalSlots      int
	OccupiedSlots   int
	SlotUtilization float64
}
