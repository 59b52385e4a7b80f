package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// Collaborator lookups are bounded so the order flow never hangs on the
// listing catalog or the identity store. Timeouts surface as UnavailableError.
const (
	listingLookupTimeout  = 2 * time.Second
	identityLookupTimeout = 2 * time.Second
)

var ErrListingIsNotActive = errors.New("listing is not active")

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the listing, snapshots its price into the order, derives the seller
// from the listing owner, and bumps the listing's order counter after commit.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, counters, logger)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), buyerID, listingID, "Logo redesign", time.Time{})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and awaiting seller acceptance
type CreateOrderCommandHandler struct {
	uowFactory OrderListingUoWFactory
	counters   ListingCounterIncrementer
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// The counter incrementer runs outside the command transaction; its failures
// are logged and left to the reconciliation job.
func NewCreateOrderCommandHandler(
	uowFactory OrderListingUoWFactory,
	counters ListingCounterIncrementer,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		counters:   counters,
		logger:     logger,
	}
}

// Handle processes the order creation command.
// The listing lookup is bounded by listingLookupTimeout and reported as an
// UnavailableError when it does not complete in time. A deactivated listing is
// reported the same as an absent one. The order snapshots the listing price at
// this moment; later listing price changes do not affect it.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	lookupCtx, cancel := context.WithTimeout(ctx, listingLookupTimeout)
	defer cancel()

	lst, err := uow.ListingRepository().Get(lookupCtx, cmd.ListingID())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return errs.NewUnavailableErrorWithCause("listing", err)
		}
		return err
	}

	if !lst.IsActive() {
		return errs.NewObjectNotFoundErrorWithCause("listing", cmd.ListingID().String(), ErrListingIsNotActive)
	}

	now := time.Now().UTC()
	deliveryDate := cmd.DeliveryDate()
	if deliveryDate.IsZero() {
		deliveryDate = now.Add(lst.DeliveryWindow())
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.BuyerID(),
		lst.OwnerID(),
		lst.ID(),
		cmd.Requirements(),
		lst.Price(),
		deliveryDate,
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.counters.IncrementOrderCount(ctx, lst.ID()); err != nil {
		h.logger.WarnContext(ctx, "listing order counter increment failed",
			slog.String("listing_id", lst.ID().String()),
			slog.Any("error", err),
		)
	}

	return nil
}
