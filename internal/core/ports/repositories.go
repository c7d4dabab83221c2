// Package ports defines repository and collaborator interfaces for the
// freight domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"freightline/internal/core/domain/model/carrier"
	"freightline/internal/core/domain/model/facility"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/domain/model/receipt"
	"freightline/internal/core/domain/model/routing"
	"freightline/internal/core/domain/model/shipment"
)

// FacilityRepository defines the persistence contract for facility aggregates.
type FacilityRepository interface {
	// Add persists a new facility aggregate to storage.
	Add(ctx context.Context, aggregate *facility.Facility) error

	// Update persists changes to an existing facility aggregate.
	Update(ctx context.Context, aggregate *facility.Facility) error

	// Get retrieves a facility aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*facility.Facility, error)

	// GetAll retrieves every facility. The set is small and admin-managed.
	GetAll(ctx context.Context) ([]*facility.Facility, error)

	// GetHubs retrieves hub facilities ordered by their priority rank,
	// which reflects creation order. Used by the route resolver.
	GetHubs(ctx context.Context) ([]*facility.Facility, error)
}

// RouteRepository defines the persistence contract for declared route edges.
type RouteRepository interface {
	// Add persists a new edge.
	Add(ctx context.Context, aggregate *routing.Edge) error

	// Update persists changes to an existing edge.
	Update(ctx context.Context, aggregate *routing.Edge) error

	// Get retrieves an edge by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*routing.Edge, error)

	// GetAllActive retrieves every active edge of the facility graph.
	GetAllActive(ctx context.Context) ([]*routing.Edge, error)
}

// CarrierRepository defines the persistence contract for carrier aggregates.
type CarrierRepository interface {
	// Add persists a new carrier aggregate to storage.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier aggregate,
	// including its delivery statistics.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Shipments load and store together with their legs.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate and its legs.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate and its legs.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment with its legs ordered by sequence.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
}

// StockRepository defines the persistence contract for a facility's stock
// records, storage slots, and the append-only audit trail.
type StockRepository interface {
	// AddRecord persists a new stock record.
	AddRecord(ctx context.Context, record *facility.StockRecord) error

	// UpdateRecord persists changes to an existing stock record.
	UpdateRecord(ctx context.Context, record *facility.StockRecord) error

	// GetRecordsByFacility retrieves all stock records of one facility.
	GetRecordsByFacility(ctx context.Context, facilityID kernel.UUID) ([]*facility.StockRecord, error)

	// AddSlot persists a new storage slot.
	AddSlot(ctx context.Context, slot *facility.StorageSlot) error

	// UpdateSlot persists changes to an existing storage slot.
	UpdateSlot(ctx context.Context, slot *facility.StorageSlot) error

	// GetSlotsByFacility retrieves all storage slots of one facility.
	GetSlotsByFacility(ctx context.Context, facilityID kernel.UUID) ([]*facility.StorageSlot, error)

	// AddAuditEntry appends one entry to the stock audit trail.
	AddAuditEntry(ctx context.Context, entry *facility.AuditEntry) error
}

// ReceiptRepository defines the persistence contract for posted receipts.
// Receipts are immutable once posted: the contract is append-only and reads
// go through the query side.
type ReceiptRepository interface {
	// Add persists a posted receipt with its lines.
	Add(ctx context.Context, aggregate *receipt.Receipt) error
}
