package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/listing"
	"marketplace/internal/pkg/errs"
)

// CreateListingCommandHandler publishes new service listings.
// Only identities with the freelancer role may own listings.
type CreateListingCommandHandler struct {
	uowFactory ListingIdentityUoWFactory
}

// NewCreateListingCommandHandler creates a handler for listing publication.
func NewCreateListingCommandHandler(uowFactory ListingIdentityUoWFactory) CreateListingCommandHandler {
	return CreateListingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the listing creation command.
func (h *CreateListingCommandHandler) Handle(ctx context.Context, cmd CreateListingCommand) error {
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

	lookupCtx, cancel := context.WithTimeout(ctx, identityLookupTimeout)
	defer cancel()

	owner, err := uow.IdentityRepository().Get(lookupCtx, cmd.OwnerID())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return errs.NewUnavailableErrorWithCause("identity", err)
		}
		return err
	}

	if owner.Role() != identity.RoleFreelancer {
		return errs.NewForbiddenError(cmd.OwnerID().String(), "create listing")
	}

	aggregate, err := listing.NewListing(
		cmd.ListingID(),
		cmd.OwnerID(),
		cmd.Title(),
		cmd.Description(),
		cmd.Price(),
		cmd.DeliveryDays(),
		cmd.Category(),
	)
	if err != nil {
		return err
	}

	if err = uow.ListingRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
