package commands

import (
	"context"
)

// ReconcileListingCountersCommandHandler rewrites listing order counters from
// the order table in a single transaction.
type ReconcileListingCountersCommandHandler struct {
	uowFactory ListingUoWFactory
}

// NewReconcileListingCountersCommandHandler creates a handler for counter reconciliation.
func NewReconcileListingCountersCommandHandler(uowFactory ListingUoWFactory) ReconcileListingCountersCommandHandler {
	return ReconcileListingCountersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command and returns the number of
// listings whose counter changed.
func (h *ReconcileListingCountersCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileListingCountersCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	changed, err := uow.ListingRepository().ReconcileOrderCounts(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return changed, nil
}
