package order

import (
	"fmt"

	"freightline/internal/pkg/errs"
)

// Status represents the lifecycle state of a freight order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Registered ──> InProgress ──┬──> Completed
//	     │              │ ʌ     └──> Failed
//	     │              │ └──────────┘ (Reopen on reassignment)
//	     └──────────────┴──> Cancelled
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Registered is the initial status when an order is first accepted.
	// Orders in this status are waiting for a shipment to be planned.
	Registered

	// InProgress indicates a shipment has been planned and movement started.
	InProgress

	// Completed indicates the order has been delivered. Final state.
	Completed

	// Failed indicates delivery was abandoned after a failed leg. Final state.
	Failed

	// Cancelled indicates the order was withdrawn administratively. Final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Registered: "Registered",
		InProgress: "InProgress",
		Completed:  "Completed",
		Failed:     "Failed",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Registered: "Registered",
		InProgress: "InProgress",
		Completed:  "Completed",
		Failed:     "Failed",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Registered, InProgress, Completed, Failed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed || s == Cancelled
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Registered -> InProgress (shipment planned, first leg started)
//
// Returns:
//   - (InProgress, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Start() (Status, error) {
	if s != Registered {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start", s.String()),
		)
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed (final leg delivered)
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Fail transitions the status to Failed.
//
// Valid transitions:
//   - InProgress -> Failed (a leg failed in transit)
func (s Status) Fail() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fail", s.String()),
		)
	}

	return Failed, nil
}

// Reopen transitions the status back to InProgress after a failure.
//
// Valid transitions:
//   - Failed -> InProgress (the failed leg was reassigned to a new carrier)
func (s Status) Reopen() (Status, error) {
	if s != Failed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reopen", s.String()),
		)
	}

	return InProgress, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Registered -> Cancelled
//   - InProgress -> Cancelled
func (s Status) Cancel() (Status, error) {
	if s != Registered && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
