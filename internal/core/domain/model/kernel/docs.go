// Package kernel provides core domain primitives for the orders system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - Money: An exact, non-negative monetary amount with a currency code
//   - CustomerName: A validated display name with derived first/last/initials
//   - OrderID and OrderItemID: Opaque positive identifiers whose numeric
//     values are assigned by the persistence layer
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable: every operation returns a new value.
package kernel
