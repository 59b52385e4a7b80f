package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAttachRatingCommandIsNotConstructed = errors.New(
		"AttachRatingCommand must be created via NewAttachRatingCommand constructor",
	)
)

// AttachRatingCommand represents the buyer rating a completed order.
// The review text is optional; the score is bounded by the order model.
type AttachRatingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	score   int
	review  string

	guard guard.ConstructorGuard
}

// NewAttachRatingCommand creates a command to rate an order.
func NewAttachRatingCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	score int,
	review string,
) (AttachRatingCommand, error) {
	command := AttachRatingCommand{
		review: review,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
		command.setScore(score),
	); err != nil {
		return AttachRatingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachRatingCommand) Validate() error {
	return c.guard.Validate(ErrAttachRatingCommandIsNotConstructed)
}

// OrderID returns the order being rated.
func (c AttachRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identity submitting the rating.
func (c AttachRatingCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Score returns the rating score.
func (c AttachRatingCommand) Score() int {
	return c.score
}

// Review returns the optional review text.
func (c AttachRatingCommand) Review() string {
	return c.review
}

func (c *AttachRatingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AttachRatingCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AttachRatingCommand) setScore(score int) error {
	if score < order.MinRatingScore || score > order.MaxRatingScore {
		return errs.NewValueIsOutOfRangeError("score", score, order.MinRatingScore, order.MaxRatingScore)
	}

	c.score = score
	return nil
}
