package facility

import (
	"errors"
	"fmt"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/errs"
	"freightline/internal/pkg/guard"
)

var (
	// ErrStorageSlotIsNotConstructed is returned when a StorageSlot was not created
	// through NewStorageSlot or RestoreStorageSlot.
	ErrStorageSlotIsNotConstructed = errors.New("StorageSlot must be created via NewStorageSlot constructor")
	// ErrSlotOccupied is returned when occupying a slot already bound to a different package.
	ErrSlotOccupied = errors.New("storage slot is occupied by another package")
	// ErrSlotCodeIsRequired is returned when attempting to create a slot without a code.
	ErrSlotCodeIsRequired = errs.NewValueIsRequiredError("slot code")
)

// SlotStatus is the occupancy state of a storage slot.
type SlotStatus int

const (
	// SlotUnknown represents an invalid or undefined slot status.
	SlotUnknown SlotStatus = iota
	// SlotEmpty means the slot holds no package.
	SlotEmpty
	// SlotOccupied means the slot is bound to exactly one package.
	SlotOccupied
)

// String returns the human-readable name of the slot status.
func (s SlotStatus) String() string {
	switch s {
	case SlotEmpty:
		return "Empty"
	case SlotOccupied:
		return "Occupied"
	default:
		return "Unknown"
	}
}

// Validate checks if the SlotStatus value is valid.
func (s SlotStatus) Validate() error {
	if s != SlotEmpty && s != SlotOccupied {
		return errs.NewValueIsInvalidErrorWithCause("slot status",
			fmt.Errorf("%d is not a valid slot status", s))
	}
	return nil
}

// StorageSlot is a physical storage location inside a facility. A slot is
// Occupied exactly when it references a package; Occupy and Release are the
// only mutators and both preserve that correspondence.
type StorageSlot struct {
	id         kernel.UUID
	facilityID kernel.UUID
	code       string
	status     SlotStatus
	packageID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewStorageSlot creates an empty storage slot within a facility.
func NewStorageSlot(id, facilityID kernel.UUID, code string) (*StorageSlot, error) {
	slot := &StorageSlot{
		status: SlotEmpty,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		slot.setID(id),
		slot.setFacilityID(facilityID),
		slot.setCode(code),
	); err != nil {
		return nil, err
	}

	return slot, nil
}

// RestoreStorageSlot reconstructs a storage slot from persistence and verifies
// the occupancy invariant held by the stored values.
func RestoreStorageSlot(
	id, facilityID kernel.UUID,
	code string,
	status SlotStatus,
	packageID *kernel.UUID,
) (*StorageSlot, error) {
	slot, err := NewStorageSlot(id, facilityID, code)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if status == SlotOccupied && packageID == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("slot occupancy",
			errors.New("occupied slot has no package"))
	}
	if status == SlotEmpty && packageID != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("slot occupancy",
			errors.New("empty slot references a package"))
	}

	slot.status = status
	slot.packageID = packageID
	return slot, nil
}

// Validate ensures the StorageSlot was properly constructed.
func (s *StorageSlot) Validate() error {
	if s == nil {
		return ErrStorageSlotIsNotConstructed
	}
	return s.guard.Validate(ErrStorageSlotIsNotConstructed)
}

// ID returns the slot's unique identifier.
func (s *StorageSlot) ID() kernel.UUID {
	return s.id
}

// FacilityID returns the owning facility's identifier.
func (s *StorageSlot) FacilityID() kernel.UUID {
	return s.facilityID
}

// Code returns the slot's location code within the facility.
func (s *StorageSlot) Code() string {
	return s.code
}

// Status returns the slot's occupancy status.
func (s *StorageSlot) Status() SlotStatus {
	return s.status
}

// PackageID returns the identifier of the stored package, or nil when empty.
func (s *StorageSlot) PackageID() *kernel.UUID {
	return s.packageID
}

// Occupy binds the slot to a package. Re-occupying with the same package is a
// no-op; a slot holding a different package rejects with ErrSlotOccupied.
func (s *StorageSlot) Occupy(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	if s.status == SlotOccupied {
		if s.packageID != nil && s.packageID.IsEqual(packageID) {
			return nil
		}
		return ErrSlotOccupied
	}

	s.status = SlotOccupied
	s.packageID = &packageID
	return nil
}

// Release empties the slot and unbinds the package reference.
func (s *StorageSlot) Release() {
	s.status = SlotEmpty
	s.packageID = nil
}

func (s *StorageSlot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *StorageSlot) setFacilityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.facilityID = id
	return nil
}

func (s *StorageSlot) setCode(code string) error {
	if code == "" {
		return ErrSlotCodeIsRequired
	}
	s.code = code
	return nil
}
