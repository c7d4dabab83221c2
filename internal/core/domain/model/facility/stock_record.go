package facility

import (
	"errors"
	"fmt"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/errs"
	"freightline/internal/pkg/guard"
)

var (
	// ErrStockRecordIsNotConstructed is returned when a StockRecord was not created
	// through NewStockRecord or RestoreStockRecord.
	ErrStockRecordIsNotConstructed = errors.New("StockRecord must be created via NewStockRecord constructor")
	// ErrInsufficientStock is returned when an outbound issue exceeds the remaining quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrQuantityIsInvalid is returned for non-positive quantities on stock movements.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity")
)

// StockRecord tracks how many units of one package a facility has received,
// how many it has already sent onwards, and how many remain on hand.
//
// Invariant, held before and after every mutation:
//
//	quantity == deliveredQuantity + remainingQuantity, remainingQuantity >= 0
//
// The only mutators are ReceiveInbound and IssueOutbound; both keep the
// invariant by recomputing remaining from quantity and delivered.
type StockRecord struct {
	id                kernel.UUID
	facilityID        kernel.UUID
	packageID         kernel.UUID
	quantity          int
	deliveredQuantity int
	remainingQuantity int

	guard guard.ConstructorGuard
}

// NewStockRecord creates an empty stock record for a (facility, package) pair.
// All counters start at zero; quantities arrive through ReceiveInbound.
func NewStockRecord(id, facilityID, packageID kernel.UUID) (*StockRecord, error) {
	record := &StockRecord{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setID(id),
		record.setFacilityID(facilityID),
		record.setPackageID(packageID),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreStockRecord reconstructs a stock record from persistence and verifies
// the counter invariant held by the stored values.
func RestoreStockRecord(
	id, facilityID, packageID kernel.UUID,
	quantity, deliveredQuantity, remainingQuantity int,
) (*StockRecord, error) {
	record, err := NewStockRecord(id, facilityID, packageID)
	if err != nil {
		return nil, err
	}

	if quantity < 0 || deliveredQuantity < 0 || remainingQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock counters",
			fmt.Errorf("negative counter in (%d, %d, %d)", quantity, deliveredQuantity, remainingQuantity))
	}
	if quantity != deliveredQuantity+remainingQuantity {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock counters",
			fmt.Errorf("%d != %d + %d", quantity, deliveredQuantity, remainingQuantity))
	}

	record.quantity = quantity
	record.deliveredQuantity = deliveredQuantity
	record.remainingQuantity = remainingQuantity
	return record, nil
}

// Validate ensures the StockRecord was properly constructed.
func (r *StockRecord) Validate() error {
	if r == nil {
		return ErrStockRecordIsNotConstructed
	}
	return r.guard.Validate(ErrStockRecordIsNotConstructed)
}

// ID returns the record's unique identifier.
func (r *StockRecord) ID() kernel.UUID {
	return r.id
}

// FacilityID returns the owning facility's identifier.
func (r *StockRecord) FacilityID() kernel.UUID {
	return r.facilityID
}

// PackageID returns the tracked package's identifier.
func (r *StockRecord) PackageID() kernel.UUID {
	return r.packageID
}

// Quantity returns the total units ever received.
func (r *StockRecord) Quantity() int {
	return r.quantity
}

// DeliveredQuantity returns the units already issued onwards.
func (r *StockRecord) DeliveredQuantity() int {
	return r.deliveredQuantity
}

// RemainingQuantity returns the units currently on hand.
func (r *StockRecord) RemainingQuantity() int {
	return r.remainingQuantity
}

// ReceiveInbound adds qty units to the record. Quantity and remaining grow
// together; delivered is untouched.
func (r *StockRecord) ReceiveInbound(qty int) error {
	if qty <= 0 {
		return ErrQuantityIsInvalid
	}

	r.quantity += qty
	r.remainingQuantity = r.quantity - r.deliveredQuantity
	return nil
}

// IssueOutbound moves qty units from remaining to delivered. The total
// quantity is unchanged. Returns ErrInsufficientStock when the facility does
// not hold enough remaining units.
func (r *StockRecord) IssueOutbound(qty int) error {
	if qty <= 0 {
		return ErrQuantityIsInvalid
	}
	if r.remainingQuantity < qty {
		return ErrInsufficientStock
	}

	r.deliveredQuantity += qty
	r.remainingQuantity = r.quantity - r.deliveredQuantity
	return nil
}

func (r *StockRecord) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *StockRecord) setFacilityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.facilityID = id
	return nil
}

func (r *StockRecord) setPackageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.packageID = id
	return nil
}
