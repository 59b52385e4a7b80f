// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its full thread and deliverable
// list. The actor must be a participant of the order; outsiders get a
// forbidden error, not an empty view.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, actorID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order as seen by an actor.
func NewGetOrderQuery(orderID, actorID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setActorID(actorID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorID returns the identity requesting the view.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

// MessageResponse is one entry of an order's conversation thread.
type MessageResponse struct {
	SenderID kernel.UUID
	Text     string
	SentAt   time.Time
}

// DeliverableResponse is one file reference attached to an order.
type DeliverableResponse struct {
	FileName   string
	FileURL    string
	UploadedAt time.Time
}

// RatingResponse is the buyer's evaluation of a completed order.
type RatingResponse struct {
	Score  int
	Review string
}

// GetOrderQueryResponse is the full read model of one order.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	BuyerID       kernel.UUID
	SellerID      kernel.UUID
	ListingID     kernel.UUID
	Requirements  string
	Status        string
	TotalAmount   kernel.Money
	DeliveryDate  time.Time
	CreatedAt     time.Time
	PaymentStatus string
	Messages      []MessageResponse
	Deliverables  []DeliverableResponse
	Rating        *RatingResponse
}
