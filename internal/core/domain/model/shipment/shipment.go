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
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created
	// through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	// ErrCodeIsRequired is returned when attempting to create a shipment without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrNoLegs is returned when attaching an empty leg run.
	ErrNoLegs = errors.New("shipment requires at least one leg")
	// ErrLegsAlreadyAttached is returned when attaching legs to a shipment that has some.
	ErrLegsAlreadyAttached = errors.New("shipment already has legs attached")
	// ErrLegRunIsInvalid is returned when an attached leg run violates the
	// sequence or final-leg rules.
	ErrLegRunIsInvalid = errors.New("leg run must be contiguous from 1 with exactly one final leg at the end")
	// ErrNotCurrentLeg is returned when a transition targets a leg other than
	// the shipment's current one.
	ErrNotCurrentLeg = fmt.Errorf("%w: leg is not the shipment's current leg", ErrInvalidTransition)
	// ErrNextLegMissing is returned when a non-final leg completes but no leg
	// with the next sequence number exists. The shipment is flagged for manual
	// intervention.
	ErrNextLegMissing = errors.New("no leg with the next sequence number exists")
	// ErrProofIsRequired is returned when completing the final leg without a
	// proof-of-delivery reference.
	ErrProofIsRequired = errs.NewValueIsRequiredError("proof of delivery")
)

// Shipment is the aggregate root for one order's journey through the facility
// graph. It owns its legs and derives its own status from their progress.
//
// Business rules:
//   - Leg sequences are contiguous from 1 with exactly one final leg last
//   - Transitions apply only to the current leg, in sequence order
//   - Once the shipment is terminal no leg progresses without reassignment
//   - Carrier statistics are settled by the caller once per terminal
//     transition; a reassignment that reopens the run re-arms the settle for
//     the then-assigned carrier
type Shipment struct {
	id             kernel.UUID
	code           string
	orderID        kernel.UUID
	carrierID      *kernel.UUID
	status         Status
	pickupTime     *time.Time
	deliveryTime   *time.Time
	notes          string
	proofReference string
	needsAttention bool
	legs           []*Leg

	guard guard.ConstructorGuard
}

// NewShipment creates a pending shipment with no legs. Legs come from the leg
// planner via AttachLegs.
func NewShipment(id kernel.UUID, code string, orderID kernel.UUID) (*Shipment, error) {
	s := &Shipment{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setCode(code),
		s.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment and its legs from persistence.
// Legs must arrive ordered by sequence.
func RestoreShipment(
	id kernel.UUID,
	code string,
	orderID kernel.UUID,
	carrierID *kernel.UUID,
	status Status,
	pickupTime, deliveryTime *time.Time,
	notes, proofReference string,
	needsAttention bool,
	legs []*Leg,
) (*Shipment, error) {
	s, err := NewShipment(id, code, orderID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if carrierID != nil {
		if err = carrierID.Validate(); err != nil {
			return nil, err
		}
	}
	// Stored runs are not re-checked for contiguity: a corrupted run must be
	// loadable so CompleteLeg can detect the inconsistency and flag it.
	for _, leg := range legs {
		if err = leg.Validate(); err != nil {
			return nil, err
		}
		if !leg.ShipmentID().IsEqual(s.id) {
			return nil, ErrLegRunIsInvalid
		}
	}

	s.carrierID = carrierID
	s.status = status
	s.pickupTime = pickupTime
	s.deliveryTime = deliveryTime
	s.notes = notes
	s.proofReference = proofReference
	s.needsAttention = needsAttention
	s.legs = legs
	return s, nil
}

// Validate ensures the Shipment was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// Code returns the shipment's human-readable code.
func (s *Shipment) Code() string { return s.code }

// OrderID returns the identifier of the order being moved.
func (s *Shipment) OrderID() kernel.UUID { return s.orderID }

// CarrierID returns the currently assigned carrier, nil when unresolved.
func (s *Shipment) CarrierID() *kernel.UUID { return s.carrierID }

// Status returns the shipment's derived status.
func (s *Shipment) Status() Status { return s.status }

// PickupTime returns when the first leg departed, nil before transit.
func (s *Shipment) PickupTime() *time.Time { return s.pickupTime }

// DeliveryTime returns when the final leg arrived, nil before delivery.
func (s *Shipment) DeliveryTime() *time.Time { return s.deliveryTime }

// Notes returns the shipment's free-text notes, including a recorded
// failure reason.
func (s *Shipment) Notes() string { return s.notes }

// ProofReference returns the proof-of-delivery reference, empty until the
// final leg completes.
func (s *Shipment) ProofReference() string { return s.proofReference }

// NeedsAttention reports whether the shipment was flagged for manual
// intervention after a configuration inconsistency.
func (s *Shipment) NeedsAttention() bool { return s.needsAttention }

// Legs returns the shipment's legs ordered by sequence.
func (s *Shipment) Legs() []*Leg {
	legs := make([]*Leg, len(s.legs))
	copy(legs, s.legs)
	return legs
}

// Leg returns the leg with the given id.
func (s *Shipment) Leg(legID kernel.UUID) (*Leg, error) {
	for _, leg := range s.legs {
		if leg.ID().IsEqual(legID) {
			return leg, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("legID", legID)
}

// CurrentLeg returns the leg transitions apply to: the lowest-sequence leg
// that is Pending or InTransit. Returns nil when the shipment is terminal or
// every leg is done.
func (s *Shipment) CurrentLeg() *Leg {
	if s.status.IsTerminal() {
		return nil
	}
	for _, leg := range s.legs {
		if !leg.Status().IsTerminal() {
			return leg
		}
	}
	return nil
}

// AssignCarrier binds the shipment to a carrier.
func (s *Shipment) AssignCarrier(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	s.carrierID = &carrierID
	return nil
}

// AttachLegs fixes the shipment's planned leg run. Callable once, before any
// movement.
func (s *Shipment) AttachLegs(legs []*Leg) error {
	if len(s.legs) > 0 {
		return ErrLegsAlreadyAttached
	}
	if s.status != Pending {
		return fmt.Errorf("%w: shipment in %s cannot attach legs", ErrInvalidTransition, s.status.String())
	}
	if err := s.validateLegRun(legs); err != nil {
		return err
	}

	s.legs = legs
	return nil
}

// StartLeg confirms pickup of the current leg. Starting the first leg moves
// the shipment to InTransit and stamps its pickup time.
func (s *Shipment) StartLeg(legID kernel.UUID, at time.Time) (*Leg, error) {
	leg, err := s.requireCurrentLeg(legID)
	if err != nil {
		return nil, err
	}

	if err = leg.start(at); err != nil {
		return nil, err
	}

	if s.status == Pending {
		newStatus, statusErr := s.status.Start()
		if statusErr != nil {
			return nil, statusErr
		}
		s.status = newStatus
		s.pickupTime = &at
	}

	return leg, nil
}

// CompleteLeg marks the current leg delivered. For the final leg a non-empty
// proofReference is mandatory and the shipment itself becomes Delivered. For
// an intermediate leg the successor is returned for hand-off; a missing
// successor flags the shipment and returns ErrNextLegMissing.
func (s *Shipment) CompleteLeg(legID kernel.UUID, at time.Time, proofReference string) (*Leg, error) {
	leg, err := s.requireCurrentLeg(legID)
	if err != nil {
		return nil, err
	}

	if leg.IsFinal() && proofReference == "" {
		return nil, ErrProofIsRequired
	}

	if err = leg.complete(at); err != nil {
		return nil, err
	}

	if proofReference != "" {
		s.proofReference = proofReference
	}

	if leg.IsFinal() {
		newStatus, statusErr := s.status.Deliver()
		if statusErr != nil {
			return nil, statusErr
		}
		s.status = newStatus
		s.deliveryTime = &at
		return nil, nil
	}

	next := s.legAtSequence(leg.Sequence() + 1)
	if next == nil {
		s.needsAttention = true
		return nil, ErrNextLegMissing
	}
	return next, nil
}

// FailLeg marks the current leg failed with a mandatory reason and cascades
// the failure to the shipment. No further legs progress without reassignment.
func (s *Shipment) FailLeg(legID kernel.UUID, reason string) error {
	leg, err := s.requireCurrentLeg(legID)
	if err != nil {
		return err
	}

	if err = leg.fail(reason); err != nil {
		return err
	}

	newStatus, err := s.status.Fail()
	if err != nil {
		return err
	}
	s.status = newStatus
	s.notes = reason
	return nil
}

// ReassignLeg is the administrative override: it replaces a leg's carrier,
// resets the leg to Pending, and brings a failed shipment back in progress.
// Delivered shipments cannot be reassigned.
func (s *Shipment) ReassignLeg(legID, newCarrierID kernel.UUID) (*Leg, error) {
	if s.status == Delivered {
		return nil, fmt.Errorf("%w: delivered shipment cannot be reassigned", ErrInvalidTransition)
	}

	leg, err := s.Leg(legID)
	if err != nil {
		return nil, err
	}

	if err = leg.reassign(newCarrierID); err != nil {
		return nil, err
	}

	s.carrierID = &newCarrierID
	if s.status == Failed {
		s.status = InTransit
	}
	s.notes = ""
	s.needsAttention = false
	s.deliveryTime = nil
	return leg, nil
}

func (s *Shipment) requireCurrentLeg(legID kernel.UUID) (*Leg, error) {
	leg, err := s.Leg(legID)
	if err != nil {
		return nil, err
	}

	current := s.CurrentLeg()
	if current == nil || !current.ID().IsEqual(legID) {
		return nil, ErrNotCurrentLeg
	}
	return leg, nil
}

func (s *Shipment) legAtSequence(sequence int) *Leg {
	for _, leg := range s.legs {
		if leg.Sequence() == sequence {
			return leg
		}
	}
	return nil
}

func (s *Shipment) validateLegRun(legs []*Leg) error {
	if len(legs) == 0 {
		return ErrNoLegs
	}

	for i, leg := range legs {
		if err := leg.Validate(); err != nil {
			return err
		}
		if !leg.ShipmentID().IsEqual(s.id) {
			return ErrLegRunIsInvalid
		}
		if leg.Sequence() != i+1 {
			return ErrLegRunIsInvalid
		}
		if leg.IsFinal() != (i == len(legs)-1) {
			return ErrLegRunIsInvalid
		}
	}
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	s.code = code
	return nil
}

func (s *Shipment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.orderID = id
	return nil
}
