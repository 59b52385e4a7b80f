package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrRequirementsAreRequired = errors.New("requirements are required")
)

// CreateOrderCommand represents a buyer's request to hire a freelancer through
// a listing. The seller, the price snapshot, and the default delivery date are
// derived from the listing by the handler, not supplied by the caller.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, buyerID, listingID, "Landing page, two revisions", time.Time{})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, counters, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	buyerID      kernel.UUID
	listingID    kernel.UUID
	requirements string
	deliveryDate time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order against a listing.
// A zero deliveryDate means "use the listing's delivery window"; a non-zero one
// overrides it and is validated against the clock when the order is built.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	buyerID kernel.UUID,
	listingID kernel.UUID,
	requirements string,
	deliveryDate time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		deliveryDate: deliveryDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setBuyerID(buyerID),
		orderCommand.setListingID(listingID),
		orderCommand.setRequirements(requirements),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the identity placing the order.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// ListingID returns the listing being ordered.
func (c CreateOrderCommand) ListingID() kernel.UUID {
	return c.listingID
}

// Requirements returns the buyer's work requirements.
func (c CreateOrderCommand) Requirements() string {
	return c.requirements
}

// DeliveryDate returns the requested delivery date. Zero means the listing's
// delivery window applies.
func (c CreateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}

	c.listingID = listingID
	return nil
}

func (c *CreateOrderCommand) setRequirements(requirements string) error {
	if requirements == "" {
		return ErrRequirementsAreRequired
	}

	c.requirements = requirements
	return nil
}
