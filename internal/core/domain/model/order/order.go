package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/pkg/errs"
	"freightline/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrCodeIsRequired is returned when attempting to create an order without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrSameFacility is returned when origin and destination facilities coincide.
	ErrSameFacility = errors.New("origin and destination facilities must differ")
)

// Order represents a freight order in the system. It is the aggregate root that
// manages the order lifecycle from registration through movement to completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty code
//   - Origin and destination facilities must be distinct
//   - Weight must be positive
//   - Status transitions follow the state machine defined on Status
//   - A carrier may only be bound while the order is not terminal
type Order struct {
	id                    kernel.UUID
	code                  string
	originFacilityID      kernel.UUID
	destinationFacilityID kernel.UUID
	carrierID             *kernel.UUID
	weightKg              float64
	serviceTier           Tier
	fee                   decimal.Decimal
	etaDays               int
	status                Status

	guard guard.ConstructorGuard
}

// NewOrder creates a registered order with validation. Fee and ETA come from
// the pricing collaborator at planning time and start zeroed.
func NewOrder(
	id kernel.UUID,
	code string,
	originFacilityID, destinationFacilityID kernel.UUID,
	weightKg float64,
	serviceTier Tier,
) (*Order, error) {
	order := &Order{
		status: Registered,
		fee:    decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCode(code),
		order.setFacilities(originFacilityID, destinationFacilityID),
		order.setWeightKg(weightKg),
		order.setServiceTier(serviceTier),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id kernel.UUID,
	code string,
	originFacilityID, destinationFacilityID kernel.UUID,
	carrierID *kernel.UUID,
	weightKg float64,
	serviceTier Tier,
	fee decimal.Decimal,
	etaDays int,
	status Status,
) (*Order, error) {
	order, err := NewOrder(id, code, originFacilityID, destinationFacilityID, weightKg, serviceTier)
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

	order.carrierID = carrierID
	order.fee = fee
	order.etaDays = etaDays
	order.status = status
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the order's business code.
func (o *Order) Code() string {
	return o.code
}

// OriginFacilityID returns the facility the order departs from.
func (o *Order) OriginFacilityID() kernel.UUID {
	return o.originFacilityID
}

// DestinationFacilityID returns the facility the order is bound for.
func (o *Order) DestinationFacilityID() kernel.UUID {
	return o.destinationFacilityID
}

// CarrierID returns the assigned carrier's ID, nil when unassigned.
func (o *Order) CarrierID() *kernel.UUID {
	return o.carrierID
}

// WeightKg returns the order's weight in kilograms.
func (o *Order) WeightKg() float64 {
	return o.weightKg
}

// ServiceTier returns the purchased service level.
func (o *Order) ServiceTier() Tier {
	return o.serviceTier
}

// Fee returns the quoted delivery fee.
func (o *Order) Fee() decimal.Decimal {
	return o.fee
}

// EtaDays returns the quoted delivery estimate in days.
func (o *Order) EtaDays() int {
	return o.etaDays
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// SetQuote records the pricing collaborator's fee and ETA for the order.
// Quotes are fixed once the order leaves Registered.
func (o *Order) SetQuote(fee decimal.Decimal, etaDays int) error {
	if o.status != Registered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to quote", o.status.String()),
		)
	}
	if fee.IsNegative() {
		return errs.NewValueIsInvalidError("fee")
	}
	if etaDays < 0 {
		return errs.NewValueIsInvalidError("etaDays")
	}

	o.fee = fee
	o.etaDays = etaDays
	return nil
}

// AssignCarrier binds the order to a carrier. Rebinding is allowed while the
// order is not terminal; reassignment of an in-flight leg goes through the
// shipment aggregate, which keeps the order's carrier in step via this method.
func (o *Order) AssignCarrier(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign a carrier", o.status.String()),
		)
	}

	o.carrierID = &carrierID
	return nil
}

// Start moves the order to InProgress when its first leg departs.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as delivered.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Fail marks the order as failed after an abandoned delivery.
func (o *Order) Fail() error {
	newStatus, err := o.status.Fail()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reassign rebinds the order to a new carrier after a leg reassignment.
// A failed order reopens to InProgress; completed and cancelled orders reject.
func (o *Order) Reassign(carrierID kernel.UUID) error {
	if o.status == Failed {
		newStatus, err := o.status.Reopen()
		if err != nil {
			return err
		}
		o.status = newStatus
	}

	return o.AssignCarrier(carrierID)
}

// Cancel withdraws the order administratively.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	o.code = code
	return nil
}

func (o *Order) setFacilities(origin, destination kernel.UUID) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	if origin.IsEqual(destination) {
		return ErrSameFacility
	}
	o.originFacilityID = origin
	o.destinationFacilityID = destination
	return nil
}

func (o *Order) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%f is not greater than 0", weightKg))
	}
	o.weightKg = weightKg
	return nil
}

func (o *Order) setServiceTier(tier Tier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	o.serviceTier = tier
	return nil
}
