// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the freight system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RouteResolver: resolves an ordered segment route between two facilities
//   - LegPlanner: materializes a resolved route as shipment legs
//   - StockLedger: posts inbound/outbound receipts against a facility's records
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
