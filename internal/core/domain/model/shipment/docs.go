// Package shipment provides the Shipment aggregate root and its Legs: the
// multi-hop journey of one order through the facility graph.
//
// The package includes:
//   - Shipment: aggregate root owning an ordered run of legs and deriving its
//     own coarse status from leg progress
//   - Leg: one facility-to-facility hop with its own status machine
//   - Status / LegStatus: state machines for the shipment and leg lifecycles
//
// Key business rules:
//   - Leg sequence numbers form a contiguous run 1..N with exactly one final
//     leg at position N
//   - At most one leg is current (Pending or InTransit and reachable) at any
//     time; transitions apply only to the current leg
//   - A leg must be picked up (InTransit) before it can fail
//   - A failed leg re-enters the active path only through reassignment
//   - Completing the final leg requires a proof-of-delivery reference
//
// All transitions are in-memory; callers persist the aggregate through the
// unit of work after a successful transition.
package shipment
