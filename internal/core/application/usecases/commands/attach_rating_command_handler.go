package commands

import (
	"context"
	"errors"

	"marketplace/internal/pkg/errs"
)

// AttachRatingCommandHandler records the buyer's one-time rating of a
// completed order and refreshes the seller's aggregate rating.
//
// The rating write is conditional on no rating being stored yet, so two racing
// submissions cannot both land. The seller's aggregate is recomputed from all
// rated completed orders inside the same transaction, never incrementally, so
// it cannot drift.
type AttachRatingCommandHandler struct {
	uowFactory OrderIdentityUoWFactory
}

// NewAttachRatingCommandHandler creates a handler for rating submissions.
func NewAttachRatingCommandHandler(uowFactory OrderIdentityUoWFactory) AttachRatingCommandHandler {
	return AttachRatingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command.
func (h *AttachRatingCommandHandler) Handle(ctx context.Context, cmd AttachRatingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

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

	if err = aggregate.AttachRating(cmd.ActorID(), cmd.Score(), cmd.Review()); err != nil {
		return err
	}

	if err = orderRepo.UpdateRating(ctx, aggregate); err != nil {
		return err
	}

	average, err := orderRepo.AverageRatingForSeller(ctx, aggregate.SellerID())
	if err != nil {
		return err
	}

	lookupCtx, cancel := context.WithTimeout(ctx, identityLookupTimeout)
	defer cancel()

	identityRepo := uow.IdentityRepository()
	seller, err := identityRepo.Get(lookupCtx, aggregate.SellerID())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return errs.NewUnavailableErrorWithCause("identity", err)
		}
		return err
	}

	if err = seller.ApplyAggregateRating(average); err != nil {
		return err
	}

	if err = identityRepo.Update(ctx, seller); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
