package facility

import (
	"errors"
	"fmt"
	"time"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/errs"
	"freightline/internal/pkg/guard"
)

// ErrAuditEntryIsNotConstructed is returned when an AuditEntry was not created
// through NewAuditEntry.
var ErrAuditEntryIsNotConstructed = errors.New("AuditEntry must be created via NewAuditEntry constructor")

// ChangeType categorizes a stock movement in the audit trail.
type ChangeType int

const (
	// ChangeUnknown represents an invalid or undefined change type.
	ChangeUnknown ChangeType = iota
	// ChangeInbound records stock arriving at a facility.
	ChangeInbound
	// ChangeOutbound records stock leaving a facility.
	ChangeOutbound
)

// String returns the human-readable name of the change type.
func (c ChangeType) String() string {
	switch c {
	case ChangeInbound:
		return "Inbound"
	case ChangeOutbound:
		return "Outbound"
	default:
		return "Unknown"
	}
}

// Validate checks if the ChangeType value is valid.
func (c ChangeType) Validate() error {
	if c != ChangeInbound && c != ChangeOutbound {
		return errs.NewValueIsInvalidErrorWithCause("change type",
			fmt.Errorf("%d is not a valid change type", c))
	}
	return nil
}

// AuditEntry is one line of the append-only stock audit trail. Every receipt
// line posted against a facility produces exactly one entry.
type AuditEntry struct {
	id            kernel.UUID
	facilityID    kernel.UUID
	packageID     kernel.UUID
	changeType    ChangeType
	quantityDelta int
	actorID       kernel.UUID
	reference     string
	recordedAt    time.Time

	guard guard.ConstructorGuard
}

// NewAuditEntry creates an audit entry for a stock movement. The reference
// carries the receipt code that caused the change.
func NewAuditEntry(
	id, facilityID, packageID kernel.UUID,
	changeType ChangeType,
	quantityDelta int,
	actorID kernel.UUID,
	reference string,
	recordedAt time.Time,
) (*AuditEntry, error) {
	entry := &AuditEntry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setFacilityID(facilityID),
		entry.setPackageID(packageID),
		entry.setChangeType(changeType),
		entry.setQuantityDelta(quantityDelta),
		entry.setActorID(actorID),
	); err != nil {
		return nil, err
	}

	entry.reference = reference
	entry.recordedAt = recordedAt
	return entry, nil
}

// Validate ensures the AuditEntry was properly constructed.
func (e *AuditEntry) Validate() error {
	if e == nil {
		return ErrAuditEntryIsNotConstructed
	}
	return e.guard.Validate(ErrAuditEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *AuditEntry) ID() kernel.UUID { return e.id }

// FacilityID returns the facility the change happened at.
func (e *AuditEntry) FacilityID() kernel.UUID { return e.facilityID }

// PackageID returns the package whose stock changed.
func (e *AuditEntry) PackageID() kernel.UUID { return e.packageID }

// ChangeType returns the movement direction.
func (e *AuditEntry) ChangeType() ChangeType { return e.changeType }

// QuantityDelta returns the number of units moved.
func (e *AuditEntry) QuantityDelta() int { return e.quantityDelta }

// ActorID returns the identifier of the user who posted the movement.
func (e *AuditEntry) ActorID() kernel.UUID { return e.actorID }

// Reference returns the receipt code that caused the change.
func (e *AuditEntry) Reference() string { return e.reference }

// RecordedAt returns when the change was recorded.
func (e *AuditEntry) RecordedAt() time.Time { return e.recordedAt }

func (e *AuditEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *AuditEntry) setFacilityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.facilityID = id
	return nil
}

func (e *AuditEntry) setPackageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.packageID = id
	return nil
}

func (e *AuditEntry) setChangeType(changeType ChangeType) error {
	if err := changeType.Validate(); err != nil {
		return err
	}
	e.changeType = changeType
	return nil
}

func (e *AuditEntry) setQuantityDelta(delta int) error {
	if delta <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantityDelta",
			fmt.Errorf("%d is not greater than 0", delta))
	}
	e.quantityDelta = delta
	return nil
}

func (e *AuditEntry) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.actorID = id
	return nil
}
