package shipment

import (
	"errors"
	"fmt"
	"time"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/errs"
	"freightline/internal/pkg/guard"
)

var (
	// ErrLegIsNotConstructed is returned when a Leg was not created through
	// NewLeg or RestoreLeg.
	ErrLegIsNotConstructed = errors.New("Leg must be created via NewLeg constructor")
	// ErrDestinationIsRequired is returned when a non-final leg has no destination facility.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("toFacilityID")
	// ErrFailureReasonIsRequired is returned when failing a leg without a reason.
	ErrFailureReasonIsRequired = errs.NewValueIsRequiredError("failure reason")
)

// Leg is one facility-to-facility hop of a shipment. Legs are entities owned
// by the Shipment aggregate; all status transitions go through the shipment,
// which enforces the single-current-leg rule across the run.
type Leg struct {
	id             kernel.UUID
	shipmentID     kernel.UUID
	orderID        kernel.UUID
	fromFacilityID kernel.UUID
	toFacilityID   *kernel.UUID
	carrierID      *kernel.UUID
	sequence       int
	isFinal        bool
	status         LegStatus
	pickupTime     *time.Time
	deliveryTime   *time.Time
	failureReason  string
	distanceKm     float64
	estimatedHours float64

	guard guard.ConstructorGuard
}

// NewLeg creates a pending leg. toFacilityID may be nil only on the final
// consumer-facing hop; carrierID may be nil until resolved.
func NewLeg(
	id, shipmentID, orderID, fromFacilityID kernel.UUID,
	toFacilityID, carrierID *kernel.UUID,
	sequence int,
	isFinal bool,
	distanceKm, estimatedHours float64,
) (*Leg, error) {
	leg := &Leg{
		status: LegPending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		leg.setID(id),
		leg.setShipmentID(shipmentID),
		leg.setOrderID(orderID),
		leg.setFromFacilityID(fromFacilityID),
		leg.setToFacilityID(toFacilityID, isFinal),
		leg.setCarrierID(carrierID),
		leg.setSequence(sequence),
		leg.setDistanceKm(distanceKm),
		leg.setEstimatedHours(estimatedHours),
	); err != nil {
		return nil, err
	}

	leg.isFinal = isFinal
	return leg, nil
}

// RestoreLeg reconstructs a leg from persistence.
func RestoreLeg(
	id, shipmentID, orderID, fromFacilityID kernel.UUID,
	toFacilityID, carrierID *kernel.UUID,
	sequence int,
	isFinal bool,
	status LegStatus,
	pickupTime, deliveryTime *time.Time,
	failureReason string,
	distanceKm, estimatedHours float64,
) (*Leg, error) {
	leg, err := NewLeg(id, shipmentID, orderID, fromFacilityID, toFacilityID, carrierID,
		sequence, isFinal, distanceKm, estimatedHours)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	leg.status = status
	leg.pickupTime = pickupTime
	leg.deliveryTime = deliveryTime
	leg.failureReason = failureReason
	return leg, nil
}

// Validate ensures the Leg was properly constructed.
func (l *Leg) Validate() error {
	if l == nil {
		return ErrLegIsNotConstructed
	}
	return l.guard.Validate(ErrLegIsNotConstructed)
}

// ID returns the leg's unique identifier.
func (l *Leg) ID() kernel.UUID { return l.id }

// ShipmentID returns the owning shipment's identifier.
func (l *Leg) ShipmentID() kernel.UUID { return l.shipmentID }

// OrderID returns the identifier of the order being moved.
func (l *Leg) OrderID() kernel.UUID { return l.orderID }

// FromFacilityID returns the departure facility of the hop.
func (l *Leg) FromFacilityID() kernel.UUID { return l.fromFacilityID }

// ToFacilityID returns the arrival facility, nil on the final consumer hop.
func (l *Leg) ToFacilityID() *kernel.UUID { return l.toFacilityID }

// CarrierID returns the assigned carrier, nil until resolved.
func (l *Leg) CarrierID() *kernel.UUID { return l.carrierID }

// Sequence returns the leg's 1-based position within the shipment.
func (l *Leg) Sequence() int { return l.sequence }

// IsFinal reports whether this is the last hop of the shipment.
func (l *Leg) IsFinal() bool { return l.isFinal }

// Status returns the leg's current status.
func (l *Leg) Status() LegStatus { return l.status }

// PickupTime returns when the leg was picked up, nil before transit.
func (l *Leg) PickupTime() *time.Time { return l.pickupTime }

// DeliveryTime returns when the leg was delivered, nil before delivery.
func (l *Leg) DeliveryTime() *time.Time { return l.deliveryTime }

// FailureReason returns the recorded reason for a failed leg.
func (l *Leg) FailureReason() string { return l.failureReason }

// DistanceKm returns the hop distance in kilometres.
func (l *Leg) DistanceKm() float64 { return l.distanceKm }

// EstimatedHours returns the estimated transit duration of the hop.
func (l *Leg) EstimatedHours() float64 { return l.estimatedHours }

func (l *Leg) start(at time.Time) error {
	newStatus, err := l.status.Start()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.pickupTime = &at
	return nil
}

func (l *Leg) complete(at time.Time) error {
	newStatus, err := l.status.Complete()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.deliveryTime = &at
	return nil
}

func (l *Leg) fail(reason string) error {
	if reason == "" {
		return ErrFailureReasonIsRequired
	}

	newStatus, err := l.status.Fail()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.failureReason = reason
	return nil
}

// reassign replaces the carrier and resets the leg to Pending, clearing any
// prior progress and failure record.
func (l *Leg) reassign(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	l.carrierID = &carrierID
	l.status = LegPending
	l.pickupTime = nil
	l.deliveryTime = nil
	l.failureReason = ""
	return nil
}

func (l *Leg) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Leg) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.shipmentID = id
	return nil
}

func (l *Leg) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.orderID = id
	return nil
}

func (l *Leg) setFromFacilityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.fromFacilityID = id
	return nil
}

func (l *Leg) setToFacilityID(id *kernel.UUID, isFinal bool) error {
	if id == nil {
		if !isFinal {
			return ErrDestinationIsRequired
		}
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	l.toFacilityID = id
	return nil
}

func (l *Leg) setCarrierID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	l.carrierID = id
	return nil
}

func (l *Leg) setSequence(sequence int) error {
	if sequence < 1 {
		return errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not greater than 0", sequence))
	}
	l.sequence = sequence
	return nil
}

func (l *Leg) setDistanceKm(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%f is not greater than 0", distanceKm))
	}
	l.distanceKm = distanceKm
	return nil
}

func (l *Leg) setEstimatedHours(estimatedHours float64) error {
	if estimatedHours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedHours",
			fmt.Errorf("%f is not greater than 0", estimatedHours))
	}
	l.estimatedHours = estimatedHours
	return nil
}
