// Package receipt contains the Receipt aggregate: the batch document that is
// the only entry point for stock changes at a facility. A receipt is either
// inbound (goods arriving) or outbound (goods leaving) and carries one line
// per package moved.
package receipt

import (
	"errors"
	"fmt"
	"time"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/errs"
	"freightline/internal/pkg/guard"
)

var (
	// ErrReceiptIsNotConstructed is returned when a Receipt was not created
	// through NewReceipt or RestoreReceipt.
	ErrReceiptIsNotConstructed = errors.New("Receipt must be created via NewReceipt constructor")
	// ErrCodeIsRequired is returned when attempting to create a receipt without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrLinesAreRequired is returned when a receipt carries no lines.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("lines")
)

// Kind is the direction of a receipt.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota
	// Inbound records goods arriving at a facility.
	Inbound
	// Outbound records goods leaving a facility.
	Outbound
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case Inbound:
		return "Inbound"
	case Outbound:
		return "Outbound"
	default:
		return "Unknown"
	}
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if k != Inbound && k != Outbound {
		return errs.NewValueIsInvalidErrorWithCause("receipt kind",
			fmt.Errorf("%d is not a valid receipt kind", k))
	}
	return nil
}

// Line is one package movement within a receipt. SlotID optionally targets a
// storage slot; Notes carry free text.
type Line struct {
	PackageID kernel.UUID
	Quantity  int
	SlotID    *kernel.UUID
	Notes     string
}

// Validate checks the line's package id, quantity, and optional slot id.
func (l Line) Validate() error {
	if err := l.PackageID.Validate(); err != nil {
		return err
	}
	if l.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", l.Quantity))
	}
	if l.SlotID != nil {
		if err := l.SlotID.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Receipt is the header plus lines of one stock movement batch. Posting a
// receipt through the stock ledger is all-or-nothing across its lines.
type Receipt struct {
	id         kernel.UUID
	code       string
	kind       Kind
	facilityID kernel.UUID
	orderID    *kernel.UUID
	actorID    kernel.UUID
	postedAt   time.Time
	notes      string
	lines      []Line

	guard guard.ConstructorGuard
}

// NewReceipt creates a receipt with at least one validated line. orderID is
// optional and links the movement to the order that caused it.
func NewReceipt(
	id kernel.UUID,
	code string,
	kind Kind,
	facilityID kernel.UUID,
	orderID *kernel.UUID,
	actorID kernel.UUID,
	postedAt time.Time,
	notes string,
	lines []Line,
) (*Receipt, error) {
	r := &Receipt{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCode(code),
		r.setKind(kind),
		r.setFacilityID(facilityID),
		r.setOrderID(orderID),
		r.setActorID(actorID),
		r.setLines(lines),
	); err != nil {
		return nil, err
	}

	r.postedAt = postedAt
	r.notes = notes
	return r, nil
}

// RestoreReceipt reconstructs a receipt from persistence.
func RestoreReceipt(
	id kernel.UUID,
	code string,
	kind Kind,
	facilityID kernel.UUID,
	orderID *kernel.UUID,
	actorID kernel.UUID,
	postedAt time.Time,
	notes string,
	lines []Line,
) (*Receipt, error) {
	return NewReceipt(id, code, kind, facilityID, orderID, actorID, postedAt, notes, lines)
}

// Validate ensures the Receipt was properly constructed.
func (r *Receipt) Validate() error {
	if r == nil {
		return ErrReceiptIsNotConstructed
	}
	return r.guard.Validate(ErrReceiptIsNotConstructed)
}

// ID returns the receipt's unique identifier.
func (r *Receipt) ID() kernel.UUID { return r.id }

// Code returns the receipt's business code, used as the audit reference.
func (r *Receipt) Code() string { return r.code }

// Kind returns the receipt's direction.
func (r *Receipt) Kind() Kind { return r.kind }

// FacilityID returns the facility the movement happens at.
func (r *Receipt) FacilityID() kernel.UUID { return r.facilityID }

// OrderID returns the linked order, nil for unrelated movements.
func (r *Receipt) OrderID() *kernel.UUID { return r.orderID }

// ActorID returns the identifier of the user posting the receipt.
func (r *Receipt) ActorID() kernel.UUID { return r.actorID }

// PostedAt returns when the receipt was posted.
func (r *Receipt) PostedAt() time.Time { return r.postedAt }

// Notes returns the receipt's free-text notes.
func (r *Receipt) Notes() string { return r.notes }

// Lines returns the receipt's lines.
func (r *Receipt) Lines() []Line {
	lines := make([]Line, len(r.lines))
	copy(lines, r.lines)
	return lines
}

func (r *Receipt) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Receipt) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	r.code = code
	return nil
}

func (r *Receipt) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	r.kind = kind
	return nil
}

func (r *Receipt) setFacilityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.facilityID = id
	return nil
}

func (r *Receipt) setOrderID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	r.orderID = id
	return nil
}

func (r *Receipt) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.actorID = id
	return nil
}

func (r *Receipt) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	r.lines = lines
	return nil
}
