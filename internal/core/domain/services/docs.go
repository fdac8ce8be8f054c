// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the ordering system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderValidator: A domain service that checks an order-creation payload
//     against the ordering rules and referential lookups before anything is persisted
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
