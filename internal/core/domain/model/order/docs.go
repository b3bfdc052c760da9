// Package order provides domain entities and business logic for commercial
// order management. It implements the Order aggregate root with item
// management, a status state machine and domain event recording.
//
// The package includes:
//   - Order: The aggregate root owning a non-empty collection of items,
//     a customer name, a status and a buffer of uncommitted domain events
//   - Item: A line item with product identity, quantity and unit price
//   - Status: A state machine that enforces valid order status transitions
//   - OrderCreated / OrderStatusChanged: Domain events recorded by the aggregate
//
// Key business rules:
//   - Orders must contain at least one item at all times
//   - Order status follows a defined workflow: pending -> confirmed -> shipped
//     -> delivered, with cancellation possible before shipping
//   - delivered and cancelled are terminal states
//   - The order total is the sum of all item line totals
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
