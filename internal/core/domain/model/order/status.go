package order

import (
	"fmt"

	"resto/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> ready ──┬──> out_for_delivery ──> delivered
//	   │            │             │                 ├──> delivered
//	   │            │             │                 │
//	   └────────────┴─────────────┴─────────────────┴──> cancelled
//
// delivered and cancelled are terminal: no outgoing transitions.
// Pickup orders skip out_for_delivery and go ready -> delivered directly.
type Status string

const (
	// StatusPending is the initial status when an order is first created.
	StatusPending Status = "pending"

	// StatusConfirmed indicates the restaurant accepted the order.
	// Entering this status is an assignment opportunity for delivery orders.
	StatusConfirmed Status = "confirmed"

	// StatusPreparing indicates the kitchen started working on the order.
	StatusPreparing Status = "preparing"

	// StatusReady indicates the order is packed and waiting for handoff.
	StatusReady Status = "ready"

	// StatusOutForDelivery indicates a driver is carrying the order.
	// Entering this status is an assignment opportunity for delivery orders.
	StatusOutForDelivery Status = "out_for_delivery"

	// StatusDelivered is a terminal status for fulfilled orders.
	StatusDelivered Status = "delivered"

	// StatusCancelled is a terminal status for abandoned orders.
	StatusCancelled Status = "cancelled"
)

// getStatusTransitions returns the canonical adjacency of the order state machine.
// Any status pair not listed here is an illegal transition.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusConfirmed, StatusCancelled},
		StatusConfirmed:      {StatusPreparing, StatusCancelled},
		StatusPreparing:      {StatusReady, StatusCancelled},
		StatusReady:          {StatusOutForDelivery, StatusDelivered, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered, StatusCancelled},
		StatusDelivered:      {},
		StatusCancelled:      {},
	}
}

// StatusFromString parses a wire-format status value ("pending", "confirmed", ...).
// Returns an error for any string that is not a known status.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is one of the seven known statuses.
// The empty string and any other value are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire-format name of the status.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status has no outgoing transitions.
// Only delivered and cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the state machine allows moving from the
// current status to next. Both statuses must be valid; an invalid current
// status allows no transitions.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo moves the state machine to next.
//
// Returns:
//   - (next, nil) when the transition is listed in the canonical adjacency
//   - ("", error) when next is not a valid status or the transition is illegal
//
// This method is used by Order.ChangeStatus to enforce the lifecycle.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return "", err
	}

	if !s.CanTransitionTo(next) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition from %s to %s is not allowed", s, next),
		)
	}

	return next, nil
}

// TriggersAssignment reports whether entering this status is a driver-assignment
// opportunity. Only confirmed and out_for_delivery qualify; the caller still has
// to check fulfillment type and the unset-driver guard.
func (s Status) TriggersAssignment() bool {
	return s == StatusConfirmed || s == StatusOutForDelivery
}

// StatusChange is the explicit diff of a committed status mutation.
// The lifecycle trigger computes its condition from this diff rather than
// re-inspecting order fields after the fact.
type StatusChange struct {
	From Status
	To   Status
}
