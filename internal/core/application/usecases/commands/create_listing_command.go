package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/listing"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateListingCommandIsNotConstructed = errors.New(
		"CreateListingCommand must be created via NewCreateListingCommand constructor",
	)
	ErrTitleIsRequired        = errors.New("title is required")
	ErrDeliveryDaysAreInvalid = errors.New("delivery days must be greater than 0")
)

// CreateListingCommand represents a freelancer publishing a new service listing.
type CreateListingCommand struct { //nolint:recvcheck //using for validation
	listingID    kernel.UUID
	ownerID      kernel.UUID
	title        string
	description  string
	price        kernel.Money
	deliveryDays int
	category     listing.Category

	guard guard.ConstructorGuard
}

// NewCreateListingCommand creates a command to publish a listing.
func NewCreateListingCommand(
	listingID kernel.UUID,
	ownerID kernel.UUID,
	title string,
	description string,
	price kernel.Money,
	deliveryDays int,
	category listing.Category,
) (CreateListingCommand, error) {
	command := CreateListingCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setListingID(listingID),
		command.setOwnerID(ownerID),
		command.setTitle(title),
		command.setPrice(price),
		command.setDeliveryDays(deliveryDays),
		command.setCategory(category),
	); err != nil {
		return CreateListingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateListingCommand) Validate() error {
	return c.guard.Validate(ErrCreateListingCommandIsNotConstructed)
}

// ListingID returns the unique identifier for the new listing.
func (c CreateListingCommand) ListingID() kernel.UUID {
	return c.listingID
}

// OwnerID returns the freelancer publishing the listing.
func (c CreateListingCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Title returns the listing title.
func (c CreateListingCommand) Title() string {
	return c.title
}

// Description returns the listing description.
func (c CreateListingCommand) Description() string {
	return c.description
}

// Price returns the listing price.
func (c CreateListingCommand) Price() kernel.Money {
	return c.price
}

// DeliveryDays returns the promised delivery window in days.
func (c CreateListingCommand) DeliveryDays() int {
	return c.deliveryDays
}

// Category returns the listing category.
func (c CreateListingCommand) Category() listing.Category {
	return c.category
}

func (c *CreateListingCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}

	c.listingID = listingID
	return nil
}

func (c *CreateListingCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateListingCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateListingCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateListingCommand) setDeliveryDays(deliveryDays int) error {
	if deliveryDays <= 0 {
		return ErrDeliveryDaysAreInvalid
	}

	c.deliveryDays = deliveryDays
	return nil
}

func (c *CreateListingCommand) setCategory(category listing.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}
