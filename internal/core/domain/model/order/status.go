package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions; each transition also
// names which order participant (buyer, seller, or either) may trigger it.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a buyer places an order.
	// The order is waiting for the seller to accept it.
	Pending

	// Accepted indicates the seller has accepted the order but has not
	// started working on it yet.
	Accepted

	// InProgress indicates the seller is working on the order.
	InProgress

	// Completed indicates the work was delivered and confirmed.
	// Terminal. The only status in which a rating may be attached.
	Completed

	// Cancelled indicates the order was called off before completion.
	// Terminal.
	Cancelled

	// Disputed indicates a participant escalated the order.
	// Terminal for this core; the resolution workflow lives elsewhere.
	Disputed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Accepted:   "Accepted",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
		Disputed:   "Disputed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Accepted:   "Accepted",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
		Disputed:   "Disputed",
	}
}

// StatusFromString parses a status from its string representation.
// Used when the requested target status arrives from the transport layer.
// Returns an error for unknown or invalid status names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Accepted, InProgress, Completed, Cancelled, Disputed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is an end state.
// Terminal orders accept no further status transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Disputed
}

// actorRule states which order participants may trigger a transition.
type actorRule struct {
	buyer  bool
	seller bool
}

// allows reports whether the given participant satisfies the rule.
func (r actorRule) allows(p Participant) bool {
	switch p {
	case ParticipantBuyer:
		return r.buyer
	case ParticipantSeller:
		return r.seller
	default:
		return false
	}
}

// getTransitionRules returns the order status transition table. Keys are
// (from, to) pairs; values name the participants allowed to trigger the
// transition. Disputed is reachable from every non-terminal status by either
// participant. Completion may be triggered by the seller (marks delivered) or
// the buyer (confirms).
func getTransitionRules() map[Status]map[Status]actorRule {
	either := actorRule{buyer: true, seller: true}
	sellerOnly := actorRule{seller: true}

	return map[Status]map[Status]actorRule{
		Pending: {
			Accepted:  sellerOnly,
			Cancelled: either,
			Disputed:  either,
		},
		Accepted: {
			InProgress: sellerOnly,
			Cancelled:  either,
			Disputed:   either,
		},
		InProgress: {
			Completed: either,
			Disputed:  either,
		},
	}
}

// transitionRule looks up the actor rule for a transition from s to target.
// The second return value is false when the transition is not in the table.
func (s Status) transitionRule(target Status) (actorRule, bool) {
	targets, ok := getTransitionRules()[s]
	if !ok {
		return actorRule{}, false
	}
	rule, ok := targets[target]
	return rule, ok
}

// CanTransition reports whether the status graph contains an edge from s to target,
// regardless of which participant would trigger it.
func (s Status) CanTransition(target Status) bool {
	_, ok := s.transitionRule(target)
	return ok
}
