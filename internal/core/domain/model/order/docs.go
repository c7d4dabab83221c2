// Package order provides domain entities and business logic for freight order
// management. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, routing endpoints,
//     pricing quote, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Tier: The purchased service level driving the pricing quote
//
// Key business rules:
//   - Orders must have a valid unique identifier, code, and positive weight
//   - Origin and destination facilities must differ
//   - Order status follows a defined workflow:
//     Registered -> InProgress -> Completed | Failed, with administrative
//     cancellation from any non-terminal status
//   - The pricing quote is fixed once the order leaves Registered
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
