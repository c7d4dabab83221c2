package shipment

import "fmt"

// LegStatus represents the lifecycle state of a single shipment leg.
//
// State transitions:
//
//	Pending ──> InTransit ──┬──> Delivered
//	                        └──> Failed
//
// A leg cannot fail directly from Pending: pickup must be confirmed first.
// Reassignment resets any state back to Pending.
type LegStatus int

const (
	// LegUnknown represents an invalid or undefined leg status.
	LegUnknown LegStatus = iota

	// LegPending means the leg is waiting for pickup confirmation.
	LegPending

	// LegInTransit means the leg's carrier has confirmed pickup.
	LegInTransit

	// LegDelivered means the leg reached its destination. Terminal.
	LegDelivered

	// LegFailed means the leg failed in transit. Terminal unless reassigned.
	LegFailed
)

func getLegStatusStrings() map[LegStatus]string {
	return map[LegStatus]string{
		LegUnknown:   "Unknown",
		LegPending:   "Pending",
		LegInTransit: "InTransit",
		LegDelivered: "Delivered",
		LegFailed:    "Failed",
	}
}

// Validate checks if the LegStatus value is valid.
func (s LegStatus) Validate() error {
	if s != LegPending && s != LegInTransit && s != LegDelivered && s != LegFailed {
		return fmt.Errorf("%w: %d is not a valid leg status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the human-readable name of the leg status.
func (s LegStatus) String() string {
	if str, ok := getLegStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the leg has reached Delivered or Failed.
func (s LegStatus) IsTerminal() bool {
	return s == LegDelivered || s == LegFailed
}

// Start transitions the leg to InTransit on pickup confirmation.
func (s LegStatus) Start() (LegStatus, error) {
	if s != LegPending {
		return 0, fmt.Errorf("%w: leg in %s cannot start", ErrInvalidTransition, s.String())
	}
	return LegInTransit, nil
}

// Complete transitions the leg to Delivered.
func (s LegStatus) Complete() (LegStatus, error) {
	if s != LegInTransit {
		return 0, fmt.Errorf("%w: leg in %s cannot be completed", ErrInvalidTransition, s.String())
	}
	return LegDelivered, nil
}

// Fail transitions the leg to Failed.
func (s LegStatus) Fail() (LegStatus, error) {
	if s != LegInTransit {
		return 0, fmt.Errorf("%w: leg in %s cannot fail", ErrInvalidTransition, s.String())
	}
	return LegFailed, nil
}
