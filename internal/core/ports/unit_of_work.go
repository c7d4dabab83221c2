package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// FacilityRepository returns a FacilityRepository bound to the current transaction.
	FacilityRepository() FacilityRepository

	// RouteRepository returns a RouteRepository bound to the current transaction.
	RouteRepository() RouteRepository

	// CarrierRepository returns a CarrierRepository bound to the current transaction.
	CarrierRepository() CarrierRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// ShipmentRepository returns a ShipmentRepository bound to the current transaction.
	ShipmentRepository() ShipmentRepository

	// StockRepository returns a StockRepository bound to the current transaction.
	StockRepository() StockRepository

	// ReceiptRepository returns a ReceiptRepository bound to the current transaction.
	ReceiptRepository() ReceiptRepository
}
