// Package services provides domain services that implement business operations
// spanning an order's items without naturally belonging to the aggregate root.
//
// The package includes:
//   - OrderPricingService: A domain service calculating volume and bulk item
//     discounts and the resulting final price of an order
//
// Domain services hold pure calculation logic following Domain-Driven Design
// principles: they take aggregates as input and never mutate them.
package services
