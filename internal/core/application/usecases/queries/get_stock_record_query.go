package queries

import (
	"errors"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/guard"
)

var ErrGetStockRecordQueryIsNotConstructed = errors.New(
	"GetStockRecordQuery must be created via NewGetStockRecordQuery constructor",
)

// GetStockRecordQuery retrieves the stock counters of one package at one
// facility.
type GetStockRecordQuery struct {
	facilityID kernel.UUID
	packageID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockRecordQuery creates a query for a single stock record.
func NewGetStockRecordQuery(facilityID, packageID kernel.UUID) (GetStockRecordQuery, error) {
	if err := errors.Join(facilityID.Validate(), packageID.Validate()); err != nil {
		return GetStockRecordQuery{}, err
	}

	return GetStockRecordQuery{
		facilityID: facilityID,
		packageID:  packageID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockRecordQuery) Validate() error {
	return q.guard.Validate(ErrGetStockRecordQueryIsNotConstructed)
}

// FacilityID returns the facility being queried.
func (q GetStockRecordQuery) FacilityID() kernel.UUID {
	return q.facilityID
}

// PackageID returns the package being queried.
func (q GetStockRecordQuery) PackageID() kernel.UUID {
	return q.packageID
}

// GetStockRecordQueryResponse carries the counters of one stock record.
// Remaining is always Quantity minus Delivered.
type GetStockRecordQueryResponse struct {
	FacilityID kernel.UUID
	PackageID  kernel.UUID
	Quantity   int
	Delivered  int
	Remaining  int
}
