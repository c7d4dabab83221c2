package shipment

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel wrapped by every rejected status
// transition in this package. Callers use errors.Is to distinguish a
// transition rejection from a validation failure.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the coarse lifecycle state of a shipment, derived from
// the progress of its legs.
//
// State transitions:
//
//	Pending ──> InTransit ──┬──> Delivered
//	                        └──> Failed ──> InTransit (reassignment only)
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending means no leg has started moving yet.
	Pending

	// InTransit means the first leg has been picked up.
	InTransit

	// Delivered means the final leg completed. Terminal.
	Delivered

	// Failed means a leg failed in transit. Terminal unless a leg
	// is administratively reassigned.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		InTransit:     "InTransit",
		Delivered:     "Delivered",
		Failed:        "Failed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Pending && s != InTransit && s != Delivered && s != Failed {
		return fmt.Errorf("%w: %d is not a valid shipment status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further leg progress.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// Start transitions the status to InTransit when the first leg departs.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: shipment in %s cannot start", ErrInvalidTransition, s.String())
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered when the final leg completes.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, fmt.Errorf("%w: shipment in %s cannot be delivered", ErrInvalidTransition, s.String())
	}
	return Delivered, nil
}

// Fail transitions the status to Failed when a leg fails.
func (s Status) Fail() (Status, error) {
	if s != InTransit {
		return 0, fmt.Errorf("%w: shipment in %s cannot fail", ErrInvalidTransition, s.String())
	}
	return Failed, nil
}
