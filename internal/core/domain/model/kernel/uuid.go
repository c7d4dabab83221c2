package kernel

import (
	"fmt"

	"freightline/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for a zero-value UUID,
// which can only exist when a value skipped the constructors.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies every aggregate and entity in the domain. It wraps
// github.com/google/uuid behind a value type so identifiers stay immutable
// and comparable, and so the rest of the domain never imports the library
// directly.
//
// The zero value is deliberately invalid: constructors are the only way to
// obtain a usable id, and Validate catches anything that slipped past them.
//
//	shipmentID := kernel.NewUUID()
//	facilityID, err := kernel.UUIDFromString(request.FacilityID)
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a fresh random (version 4) identifier. Used whenever a new
// aggregate comes into existence.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical textual form, as received from HTTP
// requests or read back from text columns. Accepts the bracing and urn
// variants the underlying library accepts.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes rebuilds an identifier from its 16-byte binary form, the shape
// the postgres adapters store. The nil UUID is rejected: a stored id can never
// legitimately be zero.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String renders the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID for the persistence layer. Slice it
// with [:] when raw bytes are needed.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both values identify the same object.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the zero value with ErrUUIDIsNotConstructed. Aggregate
// constructors call it on every id they are handed.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
