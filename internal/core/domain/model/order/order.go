package order

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrSelfHireNotAllowed is returned when a buyer attempts to order their own listing.
	ErrSelfHireNotAllowed = errors.New("buyer and seller must be different identities")
)

// Order represents a marketplace order in the system. It is the aggregate root
// that manages the order lifecycle from placement through acceptance and work
// to completion, including conversation messages, deliverables, and the
// buyer's rating.
//
// Order maintains these invariants:
//   - buyer and seller always differ
//   - totalAmount is non-negative and fixed at creation (a snapshot of the
//     listing price, immune to later price changes)
//   - status transitions follow the graph defined in this package, including
//     who may trigger each transition
//   - messages and deliverables are append-only
//   - the rating is set at most once, only by the buyer, only when completed
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated methods that take the acting identity.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID
	// buyerID is the identity that placed the order
	buyerID kernel.UUID
	// sellerID is the identity owning the referenced listing
	sellerID kernel.UUID
	// listingID references the listing the order was placed against
	listingID kernel.UUID
	// requirements is the buyer's description of the work (never empty)
	requirements string
	// status is the current state in the order lifecycle
	status Status
	// loadedStatus is the status this aggregate was read from storage with.
	// Conditional updates commit only while the persisted status still equals it.
	loadedStatus Status
	// totalAmount is the price snapshot taken from the listing at creation
	totalAmount kernel.Money
	// deliveryDate is the agreed delivery deadline (future-dated at creation)
	deliveryDate time.Time
	// createdAt is the server-assigned creation timestamp
	createdAt time.Time
	// messages is the append-only conversation thread
	messages []Message
	// deliverables is the append-only list of attached files
	deliverables []Deliverable
	// rating is the buyer's one-shot evaluation (nil until attached)
	rating *Rating
	// paymentStatus tracks payment independently of the order status
	paymentStatus PaymentStatus
	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a newly placed order in Pending status.
//
// The seller must be the owner of the referenced listing; the caller resolves
// that before construction. totalAmount is the listing price snapshot. The
// delivery date must lie in the future relative to now.
//
// Returns ErrSelfHireNotAllowed when buyer and seller are the same identity,
// or an aggregated validation error for other invalid parameters.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	listingID kernel.UUID,
	requirements string,
	totalAmount kernel.Money,
	deliveryDate time.Time,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		loadedStatus:  Unknown,
		paymentStatus: PaymentPending,
		createdAt:     now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(buyerID, sellerID),
		o.setListingID(listingID),
		o.setRequirements(requirements),
		o.setTotalAmount(totalAmount),
		o.setDeliveryDate(deliveryDate, now),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its child collections and rating. The restored order remembers
// the status it was loaded with; repositories use it for conditional updates.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	listingID kernel.UUID,
	requirements string,
	status Status,
	totalAmount kernel.Money,
	deliveryDate time.Time,
	createdAt time.Time,
	messages []Message,
	deliverables []Deliverable,
	rating *Rating,
	paymentStatus PaymentStatus,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := paymentStatus.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:        status,
		loadedStatus:  status,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
		messages:      append([]Message(nil), messages...),
		deliverables:  append([]Deliverable(nil), deliverables...),
		rating:        rating,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setParties(buyerID, sellerID),
		o.setListingID(listingID),
		o.setRequirements(requirements),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	if deliveryDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("deliveryDate")
	}
	o.deliveryDate = deliveryDate

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for nil or directly instantiated orders.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the identity that placed the order.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the identity owning the referenced listing.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// ListingID returns the listing the order was placed against.
func (o *Order) ListingID() kernel.UUID {
	return o.listingID
}

// Requirements returns the buyer's description of the work.
func (o *Order) Requirements() string {
	return o.requirements
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// LoadedStatus returns the status this aggregate was read from storage with.
// Returns Unknown for orders that have not been persisted yet.
func (o *Order) LoadedStatus() Status {
	return o.loadedStatus
}

// TotalAmount returns the price snapshot taken at creation time.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// DeliveryDate returns the agreed delivery deadline.
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Messages returns a copy of the conversation thread in append order.
func (o *Order) Messages() []Message {
	return append([]Message(nil), o.messages...)
}

// Deliverables returns a copy of the attached files in append order.
func (o *Order) Deliverables() []Deliverable {
	return append([]Deliverable(nil), o.deliverables...)
}

// Rating returns the buyer's rating, or nil if none has been attached.
func (o *Order) Rating() *Rating {
	if o.rating == nil {
		return nil
	}
	r := *o.rating
	return &r
}

// PaymentStatus returns the payment state of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// ParticipantOf derives the acting identity's relationship to this order.
// The relationship is computed here, once per operation, and drives every
// authorization decision in the core.
func (o *Order) ParticipantOf(identityID kernel.UUID) Participant {
	switch {
	case identityID.IsEqual(o.buyerID):
		return ParticipantBuyer
	case identityID.IsEqual(o.sellerID):
		return ParticipantSeller
	default:
		return ParticipantNone
	}
}

// TransitionTo moves the order to the target status on behalf of the acting
// identity.
//
// Checks are applied in this fixed sequence:
//  1. the actor must be a participant of the order, otherwise Forbidden;
//  2. the transition must exist in the status graph, otherwise InvalidTransition
//     identifying current and requested status;
//  3. the actor must be allowed to trigger that edge, otherwise Forbidden.
//
// The distinction matters to callers: Forbidden means wrong actor,
// InvalidTransition means wrong state.
func (o *Order) TransitionTo(actorID kernel.UUID, target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	p := o.ParticipantOf(actorID)
	if !p.IsParticipant() {
		return errs.NewForbiddenError(actorID.String(), "transition order status")
	}

	rule, ok := o.status.transitionRule(target)
	if !ok {
		return errs.NewInvalidTransitionError(o.status.String(), target.String())
	}

	if !rule.allows(p) {
		return errs.NewForbiddenErrorWithCause(actorID.String(), "transition order status",
			fmt.Errorf("%s may not move the order from %s to %s", p, o.status, target))
	}

	o.status = target
	return nil
}

// AppendMessage adds a message to the order's conversation thread with a
// server-assigned timestamp and returns it. The sender must be the buyer or
// the seller; no one else may write, and prior messages are never edited or
// removed.
func (o *Order) AppendMessage(senderID kernel.UUID, text string, sentAt time.Time) (Message, error) {
	if !o.ParticipantOf(senderID).IsParticipant() {
		return Message{}, errs.NewForbiddenError(senderID.String(), "append message")
	}

	msg, err := newMessage(senderID, text, sentAt)
	if err != nil {
		return Message{}, err
	}

	o.messages = append(o.messages, msg)
	return msg, nil
}

// AppendDeliverable attaches a file reference to the order with a
// server-assigned timestamp and returns it. Only the seller may attach
// deliverables. File content is not validated here; upload handling is an
// external concern.
func (o *Order) AppendDeliverable(actorID kernel.UUID, fileName, fileURL string, uploadedAt time.Time) (Deliverable, error) {
	if o.ParticipantOf(actorID) != ParticipantSeller {
		return Deliverable{}, errs.NewForbiddenError(actorID.String(), "append deliverable")
	}

	d, err := newDeliverable(fileName, fileURL, uploadedAt)
	if err != nil {
		return Deliverable{}, err
	}

	o.deliverables = append(o.deliverables, d)
	return d, nil
}

// AttachRating records the buyer's one-time evaluation of a completed order.
//
// Only the buyer may rate. The order must be Completed; any other status
// yields an InvalidTransition error identifying the current status. A second
// attempt yields AlreadyRated and leaves the existing rating unchanged.
func (o *Order) AttachRating(actorID kernel.UUID, score int, review string) error {
	if o.ParticipantOf(actorID) != ParticipantBuyer {
		return errs.NewForbiddenError(actorID.String(), "attach rating")
	}

	if o.status != Completed {
		return errs.NewInvalidTransitionError(o.status.String(), "Rated")
	}

	if o.rating != nil {
		return errs.NewAlreadyRatedError(o.id.String())
	}

	r, err := newRating(score, review)
	if err != nil {
		return err
	}

	o.rating = &r
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setParties validates both parties and enforces the buyer != seller invariant.
func (o *Order) setParties(buyerID, sellerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	if err := sellerID.Validate(); err != nil {
		return err
	}
	if buyerID.IsEqual(sellerID) {
		return ErrSelfHireNotAllowed
	}

	o.buyerID = buyerID
	o.sellerID = sellerID
	return nil
}

func (o *Order) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}
	o.listingID = listingID
	return nil
}

func (o *Order) setRequirements(requirements string) error {
	if requirements == "" {
		return errs.NewValueIsRequiredError("requirements")
	}
	o.requirements = requirements
	return nil
}

func (o *Order) setTotalAmount(totalAmount kernel.Money) error {
	if err := totalAmount.Validate(); err != nil {
		return err
	}
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setDeliveryDate(deliveryDate, now time.Time) error {
	if !deliveryDate.After(now) {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDate",
			fmt.Errorf("%s is not in the future", deliveryDate.Format(time.RFC3339)))
	}
	o.deliveryDate = deliveryDate
	return nil
}
