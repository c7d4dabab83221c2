package queries

import (
	"context"
	"database/sql"
	"errors"

	"freightline/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStockRecordQueryHandler reads one stock record's counters from the
// database.
type GetStockRecordQueryHandler struct {
	db *gorm.DB
}

// NewGetStockRecordQueryHandler creates a handler for stock record lookups.
func NewGetStockRecordQueryHandler(db *gorm.DB) GetStockRecordQueryHandler {
	return GetStockRecordQueryHandler{db: db}
}

// Handle executes the lookup. Returns ErrObjectNotFound when the facility has
// never received the package.
func (h GetStockRecordQueryHandler) Handle(
	ctx context.Context,
	query GetStockRecordQuery,
) (GetStockRecordQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockRecordQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			quantity,
			delivered_quantity,
			remaining_quantity
		FROM stock_records
		WHERE facility_id = ?
		  AND package_id = ?
	`, query.FacilityID().Bytes(), query.PackageID().Bytes()).Row()

	var quantity, delivered, remaining int

	err := row.Scan(&quantity, &delivered, &remaining)
	if errors.Is(err, sql.ErrNoRows) {
		return GetStockRecordQueryResponse{},
			errs.NewObjectNotFoundError("stock record", query.PackageID().String())
	}
	if err != nil {
		return GetStockRecordQueryResponse{}, err
	}

	return GetStockRecordQueryResponse{
		FacilityID: query.FacilityID(),
		PackageID:  query.PackageID(),
		Quantity:   quantity,
		Delivered:  delivered,
		Remaining:  remaining,
	}, nil
}
