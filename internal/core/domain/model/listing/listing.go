// Package listing contains the Listing aggregate: a priced service offering
// owned by exactly one identity. The order core treats listings as read-only:
// it consumes the price, owner, active flag and delivery window when an order
// is placed. The one exception is the order counter, which it increments as an
// observable side effect of order creation.
package listing

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrListingIsNotConstructed is returned when using an improperly initialized Listing.
var ErrListingIsNotConstructed = errors.New("Listing must be created via NewListing or RestoreListing constructor")

// Listing is a priced service offering in the catalog.
//
// Invariants:
//   - owned by exactly one identity, fixed at creation
//   - price is non-negative
//   - the delivery window is at least one day
//   - category comes from the closed Category set
type Listing struct {
	// id uniquely identifies the listing
	id kernel.UUID
	// ownerID is the selling identity; orders placed against this listing
	// derive their seller from it
	ownerID kernel.UUID
	// title is the public headline
	title string
	// description is the public long-form text (may be empty)
	description string
	// price is the offering price; order totals snapshot it at creation
	price kernel.Money
	// deliveryDays is the nominal delivery window in days
	deliveryDays int
	// category classifies the listing
	category Category
	// active controls whether new orders may reference the listing
	active bool
	// totalOrders counts orders ever placed against the listing
	totalOrders int
	// guard ensures the listing was properly constructed
	guard guard.ConstructorGuard
}

// NewListing creates an active listing with a zero order counter.
func NewListing(
	id kernel.UUID,
	ownerID kernel.UUID,
	title, description string,
	price kernel.Money,
	deliveryDays int,
	category Category,
) (*Listing, error) {
	l := &Listing{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setOwnerID(ownerID),
		l.setTitle(title),
		l.setPrice(price),
		l.setDeliveryDays(deliveryDays),
		l.setCategory(category),
	); err != nil {
		return nil, err
	}

	l.description = description
	return l, nil
}

// RestoreListing reconstructs a Listing aggregate from persistent storage.
func RestoreListing(
	id kernel.UUID,
	ownerID kernel.UUID,
	title, description string,
	price kernel.Money,
	deliveryDays int,
	category Category,
	active bool,
	totalOrders int,
) (*Listing, error) {
	l, err := NewListing(id, ownerID, title, description, price, deliveryDays, category)
	if err != nil {
		return nil, err
	}

	if totalOrders < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalOrders",
			fmt.Errorf("%d is negative", totalOrders))
	}

	l.active = active
	l.totalOrders = totalOrders
	return l, nil
}

// Validate ensures the Listing instance was properly constructed.
func (l *Listing) Validate() error {
	if l == nil {
		return ErrListingIsNotConstructed
	}
	return l.guard.Validate(ErrListingIsNotConstructed)
}

// ID returns the listing's unique identifier.
func (l *Listing) ID() kernel.UUID {
	return l.id
}

// OwnerID returns the selling identity.
func (l *Listing) OwnerID() kernel.UUID {
	return l.ownerID
}

// Title returns the public headline.
func (l *Listing) Title() string {
	return l.title
}

// Description returns the public long-form text.
func (l *Listing) Description() string {
	return l.description
}

// Price returns the offering price.
func (l *Listing) Price() kernel.Money {
	return l.price
}

// DeliveryDays returns the nominal delivery window in days.
func (l *Listing) DeliveryDays() int {
	return l.deliveryDays
}

// DeliveryWindow returns the nominal delivery window as a duration.
// Used to default an order's delivery date when the buyer does not provide one.
func (l *Listing) DeliveryWindow() time.Duration {
	return time.Duration(l.deliveryDays) * 24 * time.Hour
}

// Category returns the listing's category.
func (l *Listing) Category() Category {
	return l.category
}

// IsActive reports whether new orders may reference the listing.
func (l *Listing) IsActive() bool {
	return l.active
}

// TotalOrders returns the number of orders ever placed against the listing.
func (l *Listing) TotalOrders() int {
	return l.totalOrders
}

// RecordOrder increments the listing's order counter.
func (l *Listing) RecordOrder() {
	l.totalOrders++
}

// Deactivate takes the listing off the catalog. Existing orders are
// unaffected; new orders may no longer reference it.
func (l *Listing) Deactivate() {
	l.active = false
}

func (l *Listing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Listing) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	l.ownerID = ownerID
	return nil
}

func (l *Listing) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	l.title = title
	return nil
}

func (l *Listing) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.price = price
	return nil
}

func (l *Listing) setDeliveryDays(deliveryDays int) error {
	if deliveryDays <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDays",
			fmt.Errorf("%d is not greater than 0", deliveryDays))
	}
	l.deliveryDays = deliveryDays
	return nil
}

func (l *Listing) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	l.category = category
	return nil
}
