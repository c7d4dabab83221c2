package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
)

// Role identifies the kind of stakeholder a notification addresses.
// Recipients are always addressed by their aggregate id.
type Role string

const (
	// RoleCarrier addresses a carrier by carrier aggregate id.
	RoleCarrier Role = "carrier"
	// RoleFacility addresses a facility by facility aggregate id.
	RoleFacility Role = "facility"
)

// Notifier is the fire-and-forget notification sink. Dispatch failures are
// logged and dropped by the adapter; they never abort the transition that
// triggered them.
type Notifier interface {
	Notify(ctx context.Context, role Role, recipientID kernel.UUID, message, eventType string, orderID *kernel.UUID) error
}

// PricingResolver computes the quoted fee and ETA for an order. Pure, no side
// effects.
type PricingResolver interface {
	Resolve(distanceKm, weightKg float64, tier order.Tier) (fee decimal.Decimal, etaDays int, err error)
}

// ProofUploader stores proof-of-delivery content and returns its URL. Final
// leg completion requires a successful upload; intermediate hops may skip it.
type ProofUploader interface {
	Upload(ctx context.Context, content []byte, referenceCode string) (string, error)
}
