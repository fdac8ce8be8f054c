// Package order provides domain entities and business logic for the order
// lifecycle in the restaurant ordering system. It implements the Order
// aggregate root with its status state machine and driver-assignment rules.
//
// The package includes:
//   - Order: The aggregate root managing identity, payment data, totals and lifecycle
//   - Status: A state machine that enforces the canonical status transitions
//   - FulfillmentType, PaymentMethod, MobileMoneyProvider, MobileMoneyNumber:
//     validated value objects for the ordering wire format
//   - Totals: the monetary breakdown with its non-negative total invariant
//
// Key business rules:
//   - Orders are created in pending and end in delivered or cancelled
//   - Delivery orders must reference an address; pickup orders never do
//   - Entering confirmed or out_for_delivery on a delivery order with no
//     driver is a driver-assignment opportunity; the unset-driver guard
//     makes the trigger idempotent
//   - total = subtotal + delivery fee - discount, never negative
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
