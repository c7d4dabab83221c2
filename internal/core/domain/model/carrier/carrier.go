// Package carrier contains the carrier aggregate: the party that physically
// moves a shipment leg between two facilities and accumulates delivery
// statistics over its lifetime.
package carrier

import (
	"errors"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/errs"
	"freightline/internal/pkg/guard"
)

var (
	// ErrCarrierIsNotConstructed is returned when a Carrier was not created
	// through NewCarrier or RestoreCarrier.
	ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")
	// ErrNameIsRequired is returned when attempting to create a carrier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCarrierInactive is returned when assigning work to a deactivated carrier.
	ErrCarrierInactive = errors.New("carrier is not active")
)

// Carrier represents a transport provider in the system.
//
// Business rules:
//   - totalDeliveries == successfulDeliveries + failedDeliveries at all times
//   - Counters change only through RecordDelivery, driven by the shipment
//     state machine on terminal transitions, exactly once per shipment
//   - Inactive carriers cannot be assigned new legs
type Carrier struct {
	id                   kernel.UUID
	name                 string
	active               bool
	totalDeliveries      int
	successfulDeliveries int
	failedDeliveries     int

	guard guard.ConstructorGuard
}

// NewCarrier creates an active carrier with zeroed statistics.
func NewCarrier(id kernel.UUID, name string) (*Carrier, error) {
	carrier := &Carrier{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		carrier.setID(id),
		carrier.setName(name),
	); err != nil {
		return nil, err
	}

	return carrier, nil
}

// RestoreCarrier reconstructs a carrier from persistence and verifies the
// statistics invariant held by the stored counters.
func RestoreCarrier(
	id kernel.UUID,
	name string,
	active bool,
	totalDeliveries, successfulDeliveries, failedDeliveries int,
) (*Carrier, error) {
	carrier, err := NewCarrier(id, name)
	if err != nil {
		return nil, err
	}

	if totalDeliveries < 0 || successfulDeliveries < 0 || failedDeliveries < 0 ||
		totalDeliveries != successfulDeliveries+failedDeliveries {
		return nil, errs.NewValueIsInvalidError("delivery counters")
	}

	carrier.active = active
	carrier.totalDeliveries = totalDeliveries
	carrier.successfulDeliveries = successfulDeliveries
	carrier.failedDeliveries = failedDeliveries
	return carrier, nil
}

// Validate ensures the Carrier was properly constructed.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// IsEqual compares two carriers by their unique identifiers.
func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Name returns the carrier's display name.
func (c *Carrier) Name() string {
	return c.name
}

// IsActive reports whether the carrier may be assigned new work.
func (c *Carrier) IsActive() bool {
	return c.active
}

// TotalDeliveries returns the count of terminal shipments attributed to the carrier.
func (c *Carrier) TotalDeliveries() int {
	return c.totalDeliveries
}

// SuccessfulDeliveries returns the count of delivered shipments.
func (c *Carrier) SuccessfulDeliveries() int {
	return c.successfulDeliveries
}

// FailedDeliveries returns the count of failed shipments.
func (c *Carrier) FailedDeliveries() int {
	return c.failedDeliveries
}

// Deactivate takes the carrier out of rotation. Running statistics are kept.
func (c *Carrier) Deactivate() {
	c.active = false
}

// Activate returns the carrier to rotation.
func (c *Carrier) Activate() {
	c.active = true
}

// RecordDelivery registers one terminal shipment outcome against the carrier.
// Total always grows by one; success routes the increment to successful,
// otherwise to failed, so total == successful + failed is preserved.
func (c *Carrier) RecordDelivery(success bool) {
	c.totalDeliveries++
	if success {
		c.successfulDeliveries++
	} else {
		c.failedDeliveries++
	}
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
