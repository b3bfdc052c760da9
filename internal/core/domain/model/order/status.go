package order

import (
	"fmt"
	"strings"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	pending ──> confirmed ──> shipped ──> delivered
//	   │            │
//	   └────────────┴──> cancelled
//
// delivered and cancelled are terminal states with no outgoing transitions.
// Status is a value object; transition legality is a pure function of the
// current and the target state.
type Status string

const (
	// StatusPending is the initial status of every newly created order.
	StatusPending Status = "pending"

	// StatusConfirmed indicates the order has been accepted for fulfillment.
	StatusConfirmed Status = "confirmed"

	// StatusShipped indicates the order has left the warehouse.
	StatusShipped Status = "shipped"

	// StatusDelivered indicates the order reached the customer. Terminal.
	StatusDelivered Status = "delivered"

	// StatusCancelled indicates the order was cancelled before shipping. Terminal.
	StatusCancelled Status = "cancelled"
)

// getStatusTransitions returns the allowed target states per source state.
// Every valid status appears as a key; terminal states map to an empty list.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusShipped, StatusCancelled},
		StatusShipped:   {StatusDelivered},
		StatusDelivered: {},
		StatusCancelled: {},
	}
}

// NewStatusFromString creates a Status from its string literal.
// The literal is trimmed and lower-cased before matching. Fails with a
// ValueIsInvalidError when the literal is not one of the five valid statuses.
func NewStatusFromString(value string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is one of the five valid literals.
func (s Status) Validate() error {
	if _, ok := getStatusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// CanTransitionTo reports whether the transition table allows moving from the
// current status to target. Pure membership check with no side effects.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsPending reports whether the order is awaiting confirmation.
func (s Status) IsPending() bool { return s == StatusPending }

// IsConfirmed reports whether the order has been confirmed.
func (s Status) IsConfirmed() bool { return s == StatusConfirmed }

// IsShipped reports whether the order has been shipped.
func (s Status) IsShipped() bool { return s == StatusShipped }

// IsDelivered reports whether the order has been delivered.
func (s Status) IsDelivered() bool { return s == StatusDelivered }

// IsCancelled reports whether the order has been cancelled.
func (s Status) IsCancelled() bool { return s == StatusCancelled }

// String implements fmt.Stringer returning the status literal.
func (s Status) String() string {
	return string(s)
}
