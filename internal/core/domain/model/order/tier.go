package order

import (
	"fmt"

	"freightline/internal/pkg/errs"
)

// Tier is the service level a customer buys for an order. The pricing
// collaborator maps a tier to a fee multiplier and an ETA.
type Tier int

const (
	// TierUnknown represents an invalid or undefined tier.
	TierUnknown Tier = iota
	// TierEconomy is the slowest and cheapest service level.
	TierEconomy
	// TierStandard is the default service level.
	TierStandard
	// TierExpress is the fastest service level.
	TierExpress
)

// String returns the human-readable name of the tier.
func (t Tier) String() string {
	switch t {
	case TierEconomy:
		return "Economy"
	case TierStandard:
		return "Standard"
	case TierExpress:
		return "Express"
	default:
		return "Unknown"
	}
}

// Validate checks if the Tier value is valid.
func (t Tier) Validate() error {
	if t != TierEconomy && t != TierStandard && t != TierExpress {
		return errs.NewValueIsInvalidErrorWithCause("service tier",
			fmt.Errorf("%d is not a valid service tier", t))
	}
	return nil
}

// TierFromString parses a tier name as stored in persistence.
func TierFromString(s string) (Tier, error) {
	switch s {
	case "Economy":
		return TierEconomy, nil
	case "Standard":
		return TierStandard, nil
	case "Express":
		return TierExpress, nil
	default:
		return TierUnknown, errs.NewValueIsInvalidErrorWithCause("service tier",
			fmt.Errorf("%q is not a valid service tier", s))
	}
}
