package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// TransitionOrderStatusCommandHandler moves an order along its status graph.
// The write is conditional on the status the order was loaded with, so two
// racing transitions cannot both win; the loser is retried once against fresh
// state and surfaces a ConcurrencyConflictError if it loses again.
//
// Example:
//
//	handler := NewTransitionOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewTransitionOrderStatusCommand(orderID, sellerID, order.Accepted)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderIdentityUoWFactory
}

// NewTransitionOrderStatusCommandHandler creates a handler for status transitions.
// Requires an OrderIdentityUoWFactory because completing an order also bumps
// the seller's completed-order counter in the same transaction.
func NewTransitionOrderStatusCommandHandler(uowFactory OrderIdentityUoWFactory) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command, retrying once on a lost
// optimistic concurrency race.
func (h *TransitionOrderStatusCommandHandler) Handle(ctx context.Context, cmd TransitionOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.transition(ctx, cmd)
	if errors.Is(err, errs.ErrConcurrencyConflict) {
		err = h.transition(ctx, cmd)
	}

	return err
}

// transition performs one attempt: load, apply the domain transition, write
// conditionally, and on completion update the seller's counter in the same
// transaction.
func (h *TransitionOrderStatusCommandHandler) transition(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.ActorID(), cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if cmd.Target() == order.Completed {
		lookupCtx, cancel := context.WithTimeout(ctx, identityLookupTimeout)
		defer cancel()

		identityRepo := uow.IdentityRepository()
		seller, sellerErr := identityRepo.Get(lookupCtx, aggregate.SellerID())
		if sellerErr != nil {
			if errors.Is(sellerErr, context.DeadlineExceeded) {
				return errs.NewUnavailableErrorWithCause("identity", sellerErr)
			}
			return sellerErr
		}

		seller.RecordCompletedOrder()
		if err = identityRepo.Update(ctx, seller); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
