// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freightline/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest composition covering the aggregates it
// touches, so tests and the composition root only wire what is actually used.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// FacilityRepoFactory provides access to the facility repository within a transaction.
	FacilityRepoFactory interface {
		FacilityRepository() ports.FacilityRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// CarrierRepoFactory provides access to the carrier repository within a transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// ReceiptRepoFactory provides access to the receipt repository within a transaction.
	ReceiptRepoFactory interface {
		ReceiptRepository() ports.ReceiptRepository
	}

	// PlanUoW manages transactions for shipment planning: registering the
	// order, resolving the route over facilities and edges, and persisting
	// the planned shipment with its legs.
	PlanUoW interface {
		TxManager
		FacilityRepoFactory
		RouteRepoFactory
		OrderRepoFactory
		ShipmentRepoFactory
	}

	// PlanUoWFactory creates new planning unit of work instances.
	PlanUoWFactory interface {
		Create() PlanUoW
	}

	// LegUoW manages transactions for leg state-machine transitions. Every
	// transition loads the shipment, keeps the order in step, and settles
	// carrier statistics on terminal outcomes.
	LegUoW interface {
		TxManager
		ShipmentRepoFactory
		OrderRepoFactory
		CarrierRepoFactory
	}

	// LegUoWFactory creates new leg transition unit of work instances.
	LegUoWFactory interface {
		Create() LegUoW
	}

	// ReceiptUoW manages transactions for receipt postings against a
	// facility's stock records, slots, and audit trail.
	ReceiptUoW interface {
		TxManager
		FacilityRepoFactory
		StockRepoFactory
		ReceiptRepoFactory
	}

	// ReceiptUoWFactory creates new receipt posting unit of work instances.
	ReceiptUoWFactory interface {
		Create() ReceiptUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FacilityUoW manages transactions for facility-only admin operations.
	FacilityUoW interface {
		TxManager
		FacilityRepoFactory
	}

	// FacilityUoWFactory creates new facility unit of work instances.
	FacilityUoWFactory interface {
		Create() FacilityUoW
	}

	// RouteUoW manages transactions for route edge administration. Edge
	// endpoints are checked against the facility repository.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
		FacilityRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// CarrierUoW manages transactions for carrier-only admin operations.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	// CarrierUoWFactory creates new carrier unit of work instances.
	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// SlotUoW manages transactions for storage slot administration. The
	// owning facility is checked before a slot is added.
	SlotUoW interface {
		TxManager
		FacilityRepoFactory
		StockRepoFactory
	}

	// SlotUoWFactory creates new storage slot unit of work instances.
	SlotUoWFactory interface {
		Create() SlotUoW
	}

	// AuditUoW manages transactions for the stock audit sweep. The sweep
	// reads facilities and their stock records without mutating either.
	AuditUoW interface {
		TxManager
		FacilityRepoFactory
		StockRepoFactory
	}

	// AuditUoWFactory creates new stock audit unit of work instances.
	AuditUoWFactory interface {
		Create() AuditUoW
	}
)
