// Package pricing implements the tariff-table pricing collaborator.
// Fees are quoted as base + per-km + per-kg, scaled by a service tier
// multiplier; the ETA derives from distance at a fixed daily range.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/ports"
	"freightline/internal/pkg/errs"
)

// kmPerDay is the planning range a shipment is assumed to cover in one day.
const kmPerDay = 500.0

var (
	baseFee    = decimal.NewFromInt(20000)
	pricePerKm = decimal.NewFromInt(3000)
	pricePerKg = decimal.NewFromInt(5000)

	economyMultiplier  = decimal.RequireFromString("0.8")
	standardMultiplier = decimal.RequireFromString("1.0")
	expressMultiplier  = decimal.RequireFromString("1.5")
)

// TariffResolver quotes fees and ETAs from the static tariff table.
// It is pure and safe for concurrent use.
type TariffResolver struct{}

// NewTariffResolver creates the tariff-table pricing resolver.
func NewTariffResolver() *TariffResolver {
	return &TariffResolver{}
}

var _ ports.PricingResolver = &TariffResolver{}

// Resolve computes the quoted fee and estimated delivery days for the given
// route distance, package weight and service tier. The fee is rounded to
// whole currency units.
func (r *TariffResolver) Resolve(
	distanceKm, weightKg float64,
	tier order.Tier,
) (decimal.Decimal, int, error) {
	if err := tier.Validate(); err != nil {
		return decimal.Zero, 0, err
	}
	if distanceKm <= 0 {
		return decimal.Zero, 0, errs.NewValueIsRequiredError("distanceKm")
	}
	if weightKg <= 0 {
		return decimal.Zero, 0, errs.NewValueIsRequiredError("weightKg")
	}

	distanceFee := pricePerKm.Mul(decimal.NewFromFloat(distanceKm))
	weightFee := pricePerKg.Mul(decimal.NewFromFloat(weightKg))
	fee := baseFee.Add(distanceFee).Add(weightFee).Mul(tierMultiplier(tier)).Round(0)

	return fee, etaDays(distanceKm, tier), nil
}

func tierMultiplier(tier order.Tier) decimal.Decimal {
	switch tier {
	case order.TierExpress:
		return expressMultiplier
	case order.TierEconomy:
		return economyMultiplier
	default:
		return standardMultiplier
	}
}

// etaDays estimates delivery days: one day per started 500 km block,
// one day faster for express (never below one day), two days slower for
// economy.
func etaDays(distanceKm float64, tier order.Tier) int {
	baseDays := int(math.Ceil(distanceKm / kmPerDay))

	switch tier {
	case order.TierExpress:
		return max(1, baseDays-1)
	case order.TierEconomy:
		return baseDays + 2
	default:
		return baseDays
	}
}
