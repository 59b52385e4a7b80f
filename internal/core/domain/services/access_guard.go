package services

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// Operation identifies a guarded order operation.
type Operation int

const (
	// OpReadOrder is viewing an order and its thread.
	OpReadOrder Operation = iota
	// OpTransitionStatus is requesting a status change.
	OpTransitionStatus
	// OpAppendMessage is writing into the conversation thread.
	OpAppendMessage
	// OpAppendDeliverable is attaching a file to the order.
	OpAppendDeliverable
	// OpAttachRating is rating a completed order.
	OpAttachRating
)

// String returns the operation name used in denial reasons.
func (op Operation) String() string {
	switch op {
	case OpReadOrder:
		return "read order"
	case OpTransitionStatus:
		return "transition order status"
	case OpAppendMessage:
		return "append message"
	case OpAppendDeliverable:
		return "append deliverable"
	case OpAttachRating:
		return "attach rating"
	default:
		return "unknown operation"
	}
}

// AccessGuard decides whether an acting identity is permitted to perform an
// operation on an order, based solely on the identity's relationship to that
// order. It answers the "wrong actor" question; "wrong state" questions are
// the aggregate's own.
//
// Rules:
//   - every operation requires the actor to be the order's buyer or seller;
//     third parties are always denied, including reads
//   - deliverables may only be appended by the seller
//   - ratings may only be attached by the buyer
//
// The guard is stateless and safe for concurrent use.
type AccessGuard struct{}

// NewAccessGuard creates an AccessGuard.
func NewAccessGuard() AccessGuard {
	return AccessGuard{}
}

// Authorize returns nil when the actor may perform op on the order, or a
// Forbidden error carrying the actor and operation otherwise.
func (g AccessGuard) Authorize(actorID kernel.UUID, o *order.Order, op Operation) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	p := o.ParticipantOf(actorID)
	if !p.IsParticipant() {
		return errs.NewForbiddenError(actorID.String(), op.String())
	}

	switch op {
	case OpAppendDeliverable:
		if p != order.ParticipantSeller {
			return errs.NewForbiddenError(actorID.String(), op.String())
		}
	case OpAttachRating:
		if p != order.ParticipantBuyer {
			return errs.NewForbiddenError(actorID.String(), op.String())
		}
	case OpReadOrder, OpTransitionStatus, OpAppendMessage:
		// Any participant may proceed; per-edge actor rules for transitions
		// are enforced by the order aggregate itself.
	}

	return nil
}
