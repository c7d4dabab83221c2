package facility

import (
	"errors"
	"fmt"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/errs"
	"freightline/internal/pkg/guard"
)

var (
	// ErrFacilityIsNotConstructed is returned when a Facility instance was not created
	// through NewFacility or RestoreFacility.
	ErrFacilityIsNotConstructed = errors.New("Facility must be created via NewFacility constructor")
	// ErrCodeIsRequired is returned when attempting to create a facility without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrNameIsRequired is returned when attempting to create a facility without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Facility represents a warehouse or depot in the freight network. It is an
// aggregate root referenced by routes, shipment legs and stock records.
//
// Facility follows these invariants:
//   - Must have a valid unique identifier, a non-empty code and a non-empty name
//   - currentStock is never negative and is only refreshed from ledger recomputation
//   - Hub facilities carry a priority rank used as a deterministic routing tie-break
//
// Facilities are long-lived and admin-managed; apart from administrative edits
// and stock refreshes they are immutable once created.
type Facility struct {
	// id is the unique identifier for the facility
	id kernel.UUID

	// code is the short human-readable facility code (e.g. "HUB-DN")
	code string

	// name is the display name of the facility
	name string

	// address is the geographic label of the facility
	address string

	// isHub marks facilities eligible as intermediate transfer points
	isHub bool

	// hubPriority ranks hubs by creation order; lower wins routing tie-breaks
	hubPriority int

	// currentStock is the aggregate of remaining quantity over all stock records
	currentStock int

	guard guard.ConstructorGuard
}

// NewFacility creates a new Facility with validation. Hub facilities carry a
// priority rank; pass isHub=false and any priority for ordinary facilities.
func NewFacility(id kernel.UUID, code, name, address string, isHub bool, hubPriority int) (*Facility, error) {
	facility := &Facility{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		facility.setID(id),
		facility.setCode(code),
		facility.setName(name),
		facility.setAddress(address),
	); err != nil {
		return nil, err
	}

	facility.isHub = isHub
	facility.hubPriority = hubPriority
	return facility, nil
}

// RestoreFacility reconstructs a Facility aggregate from persistent storage,
// including its current stock aggregate.
func RestoreFacility(
	id kernel.UUID,
	code, name, address string,
	isHub bool,
	hubPriority int,
	currentStock int,
) (*Facility, error) {
	facility, err := NewFacility(id, code, name, address, isHub, hubPriority)
	if err != nil {
		return nil, err
	}

	if err = facility.setCurrentStock(currentStock); err != nil {
		return nil, err
	}

	return facility, nil
}

// Validate ensures the Facility instance was properly constructed.
func (f *Facility) Validate() error {
	if f == nil {
		return ErrFacilityIsNotConstructed
	}
	return f.guard.Validate(ErrFacilityIsNotConstructed)
}

// IsEqual compares two facilities by their unique identifiers.
func (f *Facility) IsEqual(other *Facility) bool {
	return other != nil && f.id.IsEqual(other.id)
}

// ID returns the facility's unique identifier.
func (f *Facility) ID() kernel.UUID {
	return f.id
}

// Code returns the short facility code.
func (f *Facility) Code() string {
	return f.code
}

// Name returns the display name of the facility.
func (f *Facility) Name() string {
	return f.name
}

// Address returns the geographic label of the facility.
func (f *Facility) Address() string {
	return f.address
}

// IsHub reports whether the facility can serve as an intermediate transfer point.
func (f *Facility) IsHub() bool {
	return f.isHub
}

// HubPriority returns the hub's tie-break rank. Lower ranks win; the rank
// reflects creation order so routing decisions are deterministic.
func (f *Facility) HubPriority() int {
	return f.hubPriority
}

// CurrentStock returns the facility-level aggregate of remaining stock.
func (f *Facility) CurrentStock() int {
	return f.currentStock
}

// UpdateDetails applies an administrative edit to the facility's display fields.
// The code is intentionally not editable: it is referenced by routes and legs.
func (f *Facility) UpdateDetails(name, address string) error {
	if err := errors.Join(
		f.setName(name),
		f.setAddress(address),
	); err != nil {
		return err
	}
	return nil
}

// RefreshCurrentStock replaces the facility's stock aggregate with a freshly
// recomputed total. Only the stock ledger calls this, after posting a receipt.
func (f *Facility) RefreshCurrentStock(totalRemaining int) error {
	return f.setCurrentStock(totalRemaining)
}

func (f *Facility) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Facility) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	f.code = code
	return nil
}

func (f *Facility) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	f.name = name
	return nil
}

func (f *Facility) setAddress(address string) error {
	f.address = address
	return nil
}

func (f *Facility) setCurrentStock(currentStock int) error {
	if currentStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("currentStock",
			fmt.Errorf("%d is negative", currentStock))
	}
	f.currentStock = currentStock
	return nil
}
